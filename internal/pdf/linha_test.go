package pdf

import "testing"

func TestClassificar(t *testing.T) {
	casos := []struct {
		linha string
		tipo  TipoLinha
	}{
		{"", LinhaVazia},
		{"   ", LinhaVazia},
		{"CONTRATADA: MICAELA SAMPAIO, NIF 123456789", LinhaIgnorada},
		{"CONTRATANTE:", LinhaIgnorada},
		{"Nome: Maria Silva", LinhaIgnorada},
		{"NIF: 987654321", LinhaIgnorada},
		{"E-mail: maria@example.com", LinhaIgnorada},
		{"Email: maria@example.com", LinhaIgnorada},
		{"WhatsApp: +351 912 345 678", LinhaIgnorada},
		{"Endereço: Av. da República 45", LinhaIgnorada},
		{"CLÁUSULA 1ª - DO OBJETO", LinhaClausula},
		{"CLAUSULA 7ª - RESCISÃO E MULTA", LinhaClausula},
		{"2.1. Quadro Comparativo de Benefícios", LinhaSubtitulo},
		{"2.2. Modalidades de Fidelização", LinhaSubtitulo},
		{"CONTRATO DE ADESÃO", LinhaSubtitulo},
		{"ASSINATURAS", LinhaSubtitulo},
		// caixa alta longa demais não é cabeçalho
		{"ESTA LINHA INTEIRA EM CAIXA ALTA PASSA FOLGADA DOS SESSENTA CARACTERES DO LIMITE", LinhaTexto},
		// caixa alta curta demais tampouco
		{"OK", LinhaTexto},
		{"O plano é pessoal e não poderá ser utilizado por terceiros.", LinhaTexto},
		{"- Desconto em Serviços Extras: 50%", LinhaTexto},
	}
	for _, c := range casos {
		if got := Classificar(c.linha); got != c.tipo {
			t.Errorf("Classificar(%q) = %v, esperado %v", c.linha, got, c.tipo)
		}
	}
}
