package plano

import "strings"

// Plano descreve uma modalidade de assinatura do Clube + Estética 3.0.
type Plano struct {
	Nome           string `json:"nome"`
	NomeDisplay    string `json:"nome_display"`
	Sessoes        int    `json:"sessoes"`
	ValorMensal    int    `json:"valor_mensal"`
	Periodo        string `json:"periodo"` // "semestral" ou "anual"
	Fidelidade     int    `json:"fidelidade"`
	Descricao      string `json:"descricao"`
	DescontoExtras string `json:"desconto_extras"`
	Reagendamentos int    `json:"reagendamentos"`
	EconomiaAnual  int    `json:"economia_anual,omitempty"` // apenas planos anuais
}

// Identificadores das quatro modalidades do catálogo.
const (
	BasicSemestral   = "BASIC - Semestral"
	BasicAnual       = "BASIC - Anual"
	PremiumSemestral = "PREMIUM - Semestral"
	PremiumAnual     = "PREMIUM - Anual"
)

var catalogo = map[string]Plano{
	BasicSemestral: {
		Nome:           BasicSemestral,
		NomeDisplay:    "BASIC (6 meses)",
		Sessoes:        2,
		ValorMensal:    75,
		Periodo:        "semestral",
		Fidelidade:     6,
		Descricao:      "2 sessões/mês - Fidelidade 6 meses",
		DescontoExtras: "30%",
		Reagendamentos: 1,
	},
	BasicAnual: {
		Nome:           BasicAnual,
		NomeDisplay:    "BASIC (12 meses)",
		Sessoes:        2,
		ValorMensal:    60,
		Periodo:        "anual",
		Fidelidade:     12,
		Descricao:      "2 sessões/mês - Fidelidade 12 meses - Desconto Extra",
		DescontoExtras: "30%",
		Reagendamentos: 1,
		EconomiaAnual:  180,
	},
	PremiumSemestral: {
		Nome:           PremiumSemestral,
		NomeDisplay:    "PREMIUM (6 meses)",
		Sessoes:        4,
		ValorMensal:    120,
		Periodo:        "semestral",
		Fidelidade:     6,
		Descricao:      "4 sessões/mês - Fidelidade 6 meses + Consultoria Skincare",
		DescontoExtras: "50%",
		Reagendamentos: 2,
	},
	PremiumAnual: {
		Nome:           PremiumAnual,
		NomeDisplay:    "PREMIUM (12 meses)",
		Sessoes:        4,
		ValorMensal:    100,
		Periodo:        "anual",
		Fidelidade:     12,
		Descricao:      "4 sessões/mês - Fidelidade 12 meses - Desconto Extra + Consultoria Skincare",
		DescontoExtras: "50%",
		Reagendamentos: 2,
		EconomiaAnual:  240,
	},
}

// Listar devolve o catálogo completo na ordem fixa de exibição.
func Listar() []Plano {
	return []Plano{
		catalogo[BasicSemestral],
		catalogo[BasicAnual],
		catalogo[PremiumSemestral],
		catalogo[PremiumAnual],
	}
}

// Resolver mapeia um identificador livre (inclusive legado) para uma das
// quatro modalidades. Tenta o identificador exato e cai para a busca por
// substring; sem "SEMESTRAL" no texto assume o período anual. Nunca falha.
func Resolver(id string) Plano {
	if p, ok := catalogo[id]; ok {
		return p
	}
	upper := strings.ToUpper(id)
	if strings.Contains(upper, "PREMIUM") {
		if strings.Contains(upper, "SEMESTRAL") {
			return catalogo[PremiumSemestral]
		}
		return catalogo[PremiumAnual]
	}
	if strings.Contains(upper, "SEMESTRAL") {
		return catalogo[BasicSemestral]
	}
	return catalogo[BasicAnual]
}

// Tipo deriva o nível do plano direto do identificador, independente da
// modalidade resolvida.
func Tipo(id string) string {
	if strings.Contains(strings.ToUpper(id), "BASIC") {
		return "BASIC"
	}
	return "PREMIUM"
}

// Anual informa se o identificador corresponde a um plano anual.
func Anual(id string) bool {
	if strings.Contains(strings.ToUpper(id), "ANUAL") {
		return true
	}
	return Resolver(id).Periodo == "anual"
}
