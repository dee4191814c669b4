package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"
	log "github.com/sirupsen/logrus"
)

// Dimensões em pontos, A4 retrato.
const (
	larguraPagina = 595.28
	alturaPagina  = 841.89
	margem        = 50.0
	larguraUtil   = larguraPagina - 2*margem

	// Espaço reservado no pé de cada página para o número e as rubricas.
	limiteRodape = 90.0

	alturaQuadro   = 80.0 // quadro de dados do cliente, altura fixa
	assinaturaMaxW = 150.0
	assinaturaMaxH = 80.0
	rubricaAltura  = 20.0
)

var opcoesPNG = gofpdf.ImageOptions{ImageType: "PNG"}

const (
	imgAssinaturaCliente = "assinatura_cliente"
	imgAssinaturaEmpresa = "assinatura_empresa"
)

// DadosContrato são os campos do contrato usados no desenho do documento.
type DadosContrato struct {
	Numero     string
	Nome       string
	NIF        string
	Email      string
	WhatsApp   string
	Endereco   string
	Assinatura string // data URI base64 de um PNG, opcional
}

// Gerador monta o PDF do contrato de adesão.
type Gerador struct {
	// CaminhoAssinaturaEmpresa aponta para o PNG da assinatura da
	// contratada. O arquivo é relido a cada geração para que uma troca
	// pelo painel não exija reinício do serviço.
	CaminhoAssinaturaEmpresa string
}

func NewGerador(caminhoAssinatura string) *Gerador {
	return &Gerador{CaminhoAssinaturaEmpresa: caminhoAssinatura}
}

// desenho carrega o cursor vertical e a fonte corrente, para reaplicá-la
// depois de uma quebra de página (o rodapé troca a fonte).
type desenho struct {
	doc     *gofpdf.Fpdf
	y       float64
	estilo  string
	tamanho float64
}

func (d *desenho) fonte(estilo string, tamanho float64) {
	d.estilo, d.tamanho = estilo, tamanho
	d.doc.SetFont("Helvetica", estilo, tamanho)
}

// garanteEspaco abre nova página quando o próximo bloco não couber acima da
// área do rodapé, voltando o cursor para a margem superior.
func (d *desenho) garanteEspaco(altura float64) {
	if d.y+altura <= alturaPagina-limiteRodape {
		return
	}
	d.doc.AddPage()
	d.y = margem
	d.doc.SetFont("Helvetica", d.estilo, d.tamanho)
	d.doc.SetTextColor(0, 0, 0)
}

func (d *desenho) centralizado(texto string) {
	d.doc.Text((larguraPagina-d.doc.GetStringWidth(texto))/2, d.y, texto)
}

// Gerar desenha o contrato completo e devolve os bytes do PDF. Falhas nas
// imagens de assinatura não interrompem a geração: o documento sai sem a
// imagem e o problema fica no log.
func (g *Gerador) Gerar(texto string, c DadosContrato, nomeEmpresa string, agora time.Time) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(false, 0)
	doc.AliasNbPages("")

	infoCliente := registrarAssinaturaCliente(doc, c.Assinatura)
	infoEmpresa := registrarAssinaturaEmpresa(doc, g.CaminhoAssinaturaEmpresa)

	// Rodapé estampado em todas as páginas: "Página X de N" centralizado e
	// as rubricas das duas partes nos cantos. O total de páginas é
	// substituído no fechamento do documento.
	doc.SetFooterFunc(func() {
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(128, 128, 128)
		doc.SetXY(margem, alturaPagina-38)
		doc.CellFormat(larguraUtil, 10, tr(fmt.Sprintf("Página %d de {nb}", doc.PageNo())),
			"", 0, "C", false, 0, "")
		if infoCliente != nil {
			w := rubricaAltura * infoCliente.Width() / infoCliente.Height()
			doc.ImageOptions(imgAssinaturaCliente, 30, alturaPagina-50, w, rubricaAltura,
				false, opcoesPNG, 0, "")
		}
		if infoEmpresa != nil {
			w := rubricaAltura * infoEmpresa.Width() / infoEmpresa.Height()
			doc.ImageOptions(imgAssinaturaEmpresa, larguraPagina-30-w, alturaPagina-50, w, rubricaAltura,
				false, opcoesPNG, 0, "")
		}
	})

	doc.AddPage()
	d := &desenho{doc: doc, y: margem}

	g.cabecalho(d, tr, nomeEmpresa)
	g.tituloENumero(d, tr, c.Numero)
	g.quadroCliente(d, tr, c)
	g.corpo(d, tr, texto)
	g.assinaturas(d, tr, infoCliente, infoEmpresa, nomeEmpresa, agora)

	if doc.Err() {
		return nil, doc.Error()
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cabecalho desenha o timbre: nome da empresa em dourado, tagline e filete.
func (g *Gerador) cabecalho(d *desenho, tr func(string) string, nomeEmpresa string) {
	doc := d.doc
	d.y += 20
	d.fonte("B", 18)
	doc.SetTextColor(212, 175, 55)
	doc.Text(margem, d.y, tr(strings.ToUpper(nomeEmpresa)))

	d.y += 18
	d.fonte("I", 12)
	doc.SetTextColor(100, 100, 100)
	doc.Text(margem, d.y, tr("CLUBE + ESTÉTICA 3.0"))

	d.y += 15
	doc.SetDrawColor(212, 175, 55)
	doc.Line(margem, d.y, larguraPagina-margem, d.y)
	d.y += 35
}

func (g *Gerador) tituloENumero(d *desenho, tr func(string) string, numero string) {
	doc := d.doc
	d.fonte("B", 14)
	doc.SetTextColor(0, 0, 0)
	d.centralizado(tr("CONTRATO DE ADESÃO"))

	d.y += 18
	d.fonte("", 10)
	doc.SetTextColor(212, 175, 55)
	d.centralizado(tr("Nº " + numero))
	d.y += 30
}

// quadroCliente desenha o quadro de identificação com altura fixa; conteúdo
// que não cabe é truncado, nunca reflui.
func (g *Gerador) quadroCliente(d *desenho, tr func(string) string, c DadosContrato) {
	doc := d.doc
	doc.SetDrawColor(230, 230, 230)
	doc.SetFillColor(250, 250, 250)
	doc.Rect(margem, d.y, larguraUtil, alturaQuadro, "FD")

	doc.SetTextColor(0, 0, 0)
	d.fonte("B", 10)
	doc.Text(margem+10, d.y+15, tr("DADOS DO(A) CONTRATANTE"))

	d.fonte("", 9)
	linhaY := d.y + 30
	for _, campo := range []string{
		"Nome: " + c.Nome,
		"NIF: " + c.NIF,
		"Email: " + c.Email,
		"WhatsApp: " + c.WhatsApp,
	} {
		doc.Text(margem+10, linhaY, tr(campo))
		linhaY += 12
	}

	endereco := c.Endereco
	if utf8.RuneCountInString(endereco) > 40 {
		endereco = string([]rune(endereco)[:40])
	}
	doc.Text(margem+250, d.y+30, tr("Endereço: "+endereco))

	d.y += alturaQuadro + 20
}

// corpo percorre o texto composto linha a linha, classifica cada uma e a
// desenha com quebra de palavras por largura medida.
func (g *Gerador) corpo(d *desenho, tr func(string) string, texto string) {
	doc := d.doc
	doc.SetTextColor(0, 0, 0)

	for _, linha := range strings.Split(texto, "\n") {
		linha = strings.TrimSpace(linha)
		switch Classificar(linha) {
		case LinhaVazia:
			d.y += 8
		case LinhaIgnorada:
		case LinhaClausula:
			d.garanteEspaco(25)
			d.y += 10
			d.fonte("B", 10)
			for _, l := range quebrarLinhas(doc, tr(linha), larguraUtil) {
				doc.Text(margem, d.y, l)
				d.y += 13
			}
		case LinhaSubtitulo:
			d.garanteEspaco(25)
			d.fonte("B", 9)
			for _, l := range quebrarLinhas(doc, tr(linha), larguraUtil) {
				doc.Text(margem, d.y, l)
				d.y += 12
			}
		case LinhaTexto:
			d.garanteEspaco(25)
			d.fonte("", 9)
			for _, l := range quebrarLinhas(doc, tr(linha), larguraUtil) {
				d.garanteEspaco(15)
				doc.Text(margem, d.y, l)
				d.y += 11
			}
		}
	}
}

// assinaturas desenha o bloco final: título, as duas imagens lado a lado,
// filetes, legendas e o carimbo de data e hora.
func (g *Gerador) assinaturas(d *desenho, tr func(string) string, infoCliente, infoEmpresa *gofpdf.ImageInfoType, nomeEmpresa string, agora time.Time) {
	doc := d.doc
	d.garanteEspaco(150)
	d.y += 30

	d.fonte("B", 10)
	doc.SetTextColor(0, 0, 0)
	d.centralizado("ASSINATURAS")
	d.y += 60

	if infoCliente != nil {
		w, h := dimensionar(infoCliente, assinaturaMaxW, assinaturaMaxH)
		doc.ImageOptions(imgAssinaturaCliente, margem+30, d.y-10, w, h, false, opcoesPNG, 0, "")
	}
	if infoEmpresa != nil {
		w, h := dimensionar(infoEmpresa, assinaturaMaxW, assinaturaMaxH)
		doc.ImageOptions(imgAssinaturaEmpresa, larguraPagina-margem-w-30, d.y-10, w, h, false, opcoesPNG, 0, "")
	}
	d.y += 40

	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.5)
	doc.Line(margem+20, d.y, margem+180, d.y)
	doc.Line(larguraPagina-margem-180, d.y, larguraPagina-margem-20, d.y)

	d.y += 12
	d.fonte("", 8)
	doc.Text(margem+40, d.y, tr("Cliente (Assinatura Digital)"))
	doc.Text(larguraPagina-margem-165, d.y, tr(nomeEmpresa+" - Clube Estética"))

	d.y += 20
	doc.SetTextColor(150, 150, 150)
	d.centralizado(tr("Assinado digitalmente em: " + agora.Format("02/01/2006 15:04")))
}

// quebrarLinhas acumula palavras enquanto a largura medida da linha couber
// na largura disponível; uma palavra que sozinha excede a largura sai
// inteira na própria linha.
func quebrarLinhas(doc *gofpdf.Fpdf, texto string, largura float64) []string {
	var linhas []string
	atual := ""
	for _, palavra := range strings.Fields(texto) {
		candidata := palavra
		if atual != "" {
			candidata = atual + " " + palavra
		}
		if doc.GetStringWidth(candidata) <= largura {
			atual = candidata
			continue
		}
		if atual != "" {
			linhas = append(linhas, atual)
		}
		atual = palavra
	}
	if atual != "" {
		linhas = append(linhas, atual)
	}
	return linhas
}

// dimensionar ajusta a imagem à caixa máxima preservando a proporção,
// priorizando a largura.
func dimensionar(info *gofpdf.ImageInfoType, maxW, maxH float64) (float64, float64) {
	proporcao := info.Width() / info.Height()
	w := maxW
	h := maxW / proporcao
	if h > maxH {
		h = maxH
		w = maxH * proporcao
	}
	return w, h
}

// registrarAssinaturaCliente decodifica o data URI enviado no cadastro e
// registra a imagem no documento. Assinatura ilegível vira aviso no log.
func registrarAssinaturaCliente(doc *gofpdf.Fpdf, dataURI string) *gofpdf.ImageInfoType {
	if dataURI == "" {
		return nil
	}
	payload := dataURI
	if i := strings.IndexByte(dataURI, ','); i >= 0 {
		payload = dataURI[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		log.WithError(err).Warn("assinatura do cliente ilegível, gerando sem a imagem")
		return nil
	}
	return registrar(doc, imgAssinaturaCliente, raw)
}

// registrarAssinaturaEmpresa lê o PNG da contratada do disco; ausência do
// arquivo não impede a geração.
func registrarAssinaturaEmpresa(doc *gofpdf.Fpdf, caminho string) *gofpdf.ImageInfoType {
	if caminho == "" {
		return nil
	}
	raw, err := os.ReadFile(caminho)
	if err != nil {
		log.WithError(err).Warn("assinatura da empresa indisponível, gerando sem a imagem")
		return nil
	}
	return registrar(doc, imgAssinaturaEmpresa, raw)
}

func registrar(doc *gofpdf.Fpdf, nome string, raw []byte) *gofpdf.ImageInfoType {
	info := doc.RegisterImageOptionsReader(nome, opcoesPNG, bytes.NewReader(raw))
	if doc.Err() {
		log.Warnf("falha ao embutir imagem %s: %v", nome, doc.Error())
		doc.ClearError()
		return nil
	}
	return info
}
