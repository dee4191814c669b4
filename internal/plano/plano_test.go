package plano

import "testing"

func TestResolver(t *testing.T) {
	casos := []struct {
		id   string
		nome string
	}{
		{"BASIC - Semestral", BasicSemestral},
		{"BASIC - Anual", BasicAnual},
		{"PREMIUM - Semestral", PremiumSemestral},
		{"PREMIUM - Anual", PremiumAnual},
		// fallback por substring, sem distinção de caixa
		{"premium top", PremiumAnual},
		{"Plano Premium Semestral legado", PremiumSemestral},
		{"meu basic semestral", BasicSemestral},
		// sem SEMESTRAL assume anual; desconhecido cai em BASIC - Anual
		{"qualquer coisa", BasicAnual},
		{"", BasicAnual},
	}
	for _, c := range casos {
		if got := Resolver(c.id); got.Nome != c.nome {
			t.Errorf("Resolver(%q) = %q, esperado %q", c.id, got.Nome, c.nome)
		}
	}
}

func TestResolverValores(t *testing.T) {
	p := Resolver("PREMIUM - Anual")
	if p.ValorMensal != 100 || p.Fidelidade != 12 || p.DescontoExtras != "50%" || p.EconomiaAnual != 240 {
		t.Fatalf("PREMIUM - Anual com valores inesperados: %+v", p)
	}
	p = Resolver("BASIC - Semestral")
	if p.ValorMensal != 75 || p.Fidelidade != 6 || p.EconomiaAnual != 0 {
		t.Fatalf("BASIC - Semestral com valores inesperados: %+v", p)
	}
}

func TestTipo(t *testing.T) {
	if Tipo("meu basic") != "BASIC" {
		t.Error("identificador com BASIC deve resolver tipo BASIC")
	}
	if Tipo("PREMIUM - Anual") != "PREMIUM" {
		t.Error("identificador com PREMIUM deve resolver tipo PREMIUM")
	}
	// sem nenhum dos dois o tipo assume PREMIUM, comportamento herdado do
	// formulário original
	if Tipo("") != "PREMIUM" {
		t.Error("identificador vazio deve resolver tipo PREMIUM")
	}
}

func TestAnual(t *testing.T) {
	if !Anual("PREMIUM - Anual") || !Anual("desconhecido") {
		t.Error("anual deve ser o período padrão")
	}
	if Anual("BASIC - Semestral") || Anual("algo SEMESTRAL") {
		t.Error("identificador semestral não pode ser anual")
	}
}

func TestListar(t *testing.T) {
	planos := Listar()
	if len(planos) != 4 {
		t.Fatalf("catálogo deve ter 4 modalidades, tem %d", len(planos))
	}
	if planos[0].Nome != BasicSemestral || planos[3].Nome != PremiumAnual {
		t.Error("ordem de exibição do catálogo incorreta")
	}
}
