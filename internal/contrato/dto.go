package contrato

import "strings"

// NovoContratoDTO é o corpo aceito no cadastro público de adesão.
type NovoContratoDTO struct {
	Nome       string `json:"nome"`
	NIF        string `json:"nif"`
	WhatsApp   string `json:"whatsapp"`
	Email      string `json:"email"`
	Endereco   string `json:"endereco"`
	Plano      string `json:"plano"`
	Assinatura string `json:"signature_data"`
}

// Validar devolve o nome do primeiro campo obrigatório ausente, ou vazio
// quando o cadastro está completo. A assinatura é opcional.
func (d *NovoContratoDTO) Validar() string {
	campos := []struct{ nome, valor string }{
		{"nome", d.Nome},
		{"nif", d.NIF},
		{"email", d.Email},
		{"whatsapp", d.WhatsApp},
		{"endereco", d.Endereco},
		{"plano", d.Plano},
	}
	for _, c := range campos {
		if strings.TrimSpace(c.valor) == "" {
			return c.nome
		}
	}
	return ""
}

// GerenciarDTO é o corpo das ações administrativas sobre um contrato.
// Tags usa ponteiro para distinguir ausência de valor vazio.
type GerenciarDTO struct {
	Action string  `json:"action"`
	Tags   *string `json:"tags"`
}
