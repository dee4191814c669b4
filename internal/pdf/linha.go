package pdf

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TipoLinha classifica uma linha do texto do contrato para fins de layout.
type TipoLinha int

const (
	// LinhaVazia apenas avança o cursor.
	LinhaVazia TipoLinha = iota
	// LinhaIgnorada repete dados já desenhados no quadro do contratante.
	LinhaIgnorada
	// LinhaClausula é o título de uma cláusula numerada.
	LinhaClausula
	// LinhaSubtitulo é uma subseção numerada ou um cabeçalho em caixa alta.
	LinhaSubtitulo
	// LinhaTexto é corpo comum de parágrafo.
	LinhaTexto
)

var reSubsecao = regexp.MustCompile(`^\d+\.\d+\.`)

// Campos de identificação que o quadro de dados do cliente já apresenta.
var prefixosIgnorados = []string{
	"Nome:", "NIF:", "Email:", "E-mail:", "WhatsApp:", "Endereço:",
}

// Classificar decide como uma linha do contrato deve ser desenhada. As
// regras são casamentos de texto simples e precisam se manter estáveis:
// mudanças aqui alteram o layout de contratos já emitidos.
func Classificar(linha string) TipoLinha {
	linha = strings.TrimSpace(linha)
	if linha == "" {
		return LinhaVazia
	}
	if strings.Contains(linha, "CONTRATADA:") || strings.Contains(linha, "CONTRATANTE:") {
		return LinhaIgnorada
	}
	for _, p := range prefixosIgnorados {
		if strings.HasPrefix(linha, p) {
			return LinhaIgnorada
		}
	}
	if strings.Contains(linha, "CLÁUSULA") || strings.Contains(linha, "CLAUSULA") {
		return LinhaClausula
	}
	if reSubsecao.MatchString(linha) {
		return LinhaSubtitulo
	}
	if n := utf8.RuneCountInString(linha); linha == strings.ToUpper(linha) && n < 60 && n > 3 {
		return LinhaSubtitulo
	}
	return LinhaTexto
}
