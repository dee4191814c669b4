package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/clubeestetica/api-contratos/internal/config"
	"github.com/clubeestetica/api-contratos/internal/contrato"
	"github.com/clubeestetica/api-contratos/internal/empresa"
	"github.com/clubeestetica/api-contratos/internal/metrics"
)

// PNG 1x1 válido para exercitar o caminho da assinatura digital.
const pngMinimo = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func montarServico(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("erro ao abrir banco de teste: %v", err)
	}
	if err := db.AutoMigrate(&contrato.Contrato{}, &empresa.Configuracao{}); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	if err := empresa.NewRepository().SemearPadroes(db); err != nil {
		t.Fatalf("erro ao semear configurações: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:         "segredo-de-teste",
		AssinaturaEmpresa: "nao-existe.png",
		CriacaoRPS:        100,
		CriacaoBurst:      100,
	}
	m := metrics.New(prometheus.NewRegistry())
	return NewRouter(db, cfg, m)
}

func fazer(t *testing.T, h http.Handler, metodo, caminho string, corpo any) *httptest.ResponseRecorder {
	t.Helper()
	var leitor *bytes.Reader
	if corpo != nil {
		raw, err := json.Marshal(corpo)
		if err != nil {
			t.Fatal(err)
		}
		leitor = bytes.NewReader(raw)
	} else {
		leitor = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(metodo, caminho, leitor)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func criarContrato(t *testing.T, h http.Handler, nome, planoID string) string {
	t.Helper()
	rec := fazer(t, h, "POST", "/contratos", map[string]string{
		"nome":           nome,
		"nif":            "987654321",
		"email":          "maria@example.com",
		"whatsapp":       "+351 912 345 678",
		"endereco":       "Av. da República 45",
		"plano":          planoID,
		"signature_data": "data:image/png;base64," + pngMinimo,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("criar contrato: status %d, corpo %s", rec.Code, rec.Body.String())
	}
	var resposta struct {
		Success        bool   `json:"success"`
		ContractNumber string `json:"contract_number"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resposta); err != nil {
		t.Fatal(err)
	}
	if !resposta.Success || resposta.ContractNumber == "" {
		t.Fatalf("resposta de criação inesperada: %+v", resposta)
	}
	return resposta.ContractNumber
}

func TestCriarEBuscarContrato(t *testing.T) {
	h := montarServico(t)

	numero := criarContrato(t, h, "Maria Silva", "PREMIUM - Anual")
	esperado := fmt.Sprintf("CTR-%d-0001", time.Now().Year())
	if numero != esperado {
		t.Errorf("primeiro número = %q, esperado %q", numero, esperado)
	}

	rec := fazer(t, h, "GET", "/contratos/"+numero, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("buscar contrato: status %d", rec.Code)
	}
	var resposta struct {
		Contract contrato.Contrato `json:"contract"`
		Settings empresa.Dados     `json:"settings"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resposta); err != nil {
		t.Fatal(err)
	}
	if resposta.Contract.Nome != "Maria Silva" || resposta.Contract.Status != contrato.StatusAtivo {
		t.Errorf("contrato devolvido inesperado: %+v", resposta.Contract)
	}
	if resposta.Contract.Tags != "" {
		t.Errorf("tags iniciais = %q", resposta.Contract.Tags)
	}
	if resposta.Settings.Nome != "MICAELA SAMPAIO" {
		t.Errorf("configurações da contratada ausentes na resposta: %+v", resposta.Settings)
	}
}

func TestCriarContratoIncompleto(t *testing.T) {
	h := montarServico(t)

	rec := fazer(t, h, "POST", "/contratos", map[string]string{
		"nome": "Maria Silva",
		"nif":  "987654321",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("cadastro incompleto: status %d, esperado 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Campo obrigatório") {
		t.Errorf("corpo inesperado: %s", rec.Body.String())
	}
}

func TestBuscarContratoInexistente(t *testing.T) {
	h := montarServico(t)

	rec := fazer(t, h, "GET", "/contratos/CTR-2026-9999", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, esperado 404", rec.Code)
	}
	rec = fazer(t, h, "GET", "/contratos/CTR-2026-9999/pdf", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("pdf inexistente: status %d, esperado 404", rec.Code)
	}
}

func TestGerarPDFContrato(t *testing.T) {
	h := montarServico(t)
	numero := criarContrato(t, h, "Maria Silva", "BASIC - Semestral")

	rec := fazer(t, h, "GET", "/contratos/"+numero+"/pdf", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("gerar PDF: status %d, corpo %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, numero+".pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("corpo não começa com o cabeçalho %PDF")
	}
}

func TestGerenciarContrato(t *testing.T) {
	h := montarServico(t)
	numero := criarContrato(t, h, "Maria Silva", "PREMIUM - Anual")

	// arquivar tira da listagem padrão
	rec := fazer(t, h, "POST", "/contratos/"+numero+"/gerenciar", map[string]string{"action": "archive"})
	if rec.Code != http.StatusOK {
		t.Fatalf("arquivar: status %d", rec.Code)
	}
	var lista struct {
		Contracts []contrato.Contrato `json:"contracts"`
	}
	rec = fazer(t, h, "GET", "/contratos", nil)
	json.NewDecoder(rec.Body).Decode(&lista)
	if len(lista.Contracts) != 0 {
		t.Errorf("lista de ativos deveria estar vazia, tem %d", len(lista.Contracts))
	}
	rec = fazer(t, h, "GET", "/contratos?status=archived", nil)
	json.NewDecoder(rec.Body).Decode(&lista)
	if len(lista.Contracts) != 1 {
		t.Errorf("lista de arquivados deveria ter 1, tem %d", len(lista.Contracts))
	}

	// restaurar devolve à listagem padrão
	rec = fazer(t, h, "POST", "/contratos/"+numero+"/gerenciar", map[string]string{"action": "restore"})
	if rec.Code != http.StatusOK {
		t.Fatalf("restaurar: status %d", rec.Code)
	}
	rec = fazer(t, h, "GET", "/contratos", nil)
	json.NewDecoder(rec.Body).Decode(&lista)
	if len(lista.Contracts) != 1 {
		t.Errorf("lista de ativos deveria ter 1, tem %d", len(lista.Contracts))
	}

	// tags entram na listagem quando pedidas
	rec = fazer(t, h, "POST", "/contratos/"+numero+"/gerenciar", map[string]any{
		"action": "updateTags", "tags": "vip, spa",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("atualizar tags: status %d", rec.Code)
	}
	var listaComTags struct {
		Contracts []contrato.Contrato `json:"contracts"`
		Tags      []string            `json:"tags"`
	}
	rec = fazer(t, h, "GET", "/contratos?includeTags=true", nil)
	json.NewDecoder(rec.Body).Decode(&listaComTags)
	if len(listaComTags.Tags) != 2 {
		t.Errorf("tags distintas = %v", listaComTags.Tags)
	}

	// ação desconhecida é recusada
	rec = fazer(t, h, "POST", "/contratos/"+numero+"/gerenciar", map[string]string{"action": "explodir"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("ação inválida: status %d, esperado 400", rec.Code)
	}

	// updateTags sem tags é recusado
	rec = fazer(t, h, "POST", "/contratos/"+numero+"/gerenciar", map[string]string{"action": "updateTags"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("updateTags sem tags: status %d, esperado 400", rec.Code)
	}

	// gerenciar número inexistente
	rec = fazer(t, h, "POST", "/contratos/CTR-2026-9999/gerenciar", map[string]string{"action": "archive"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("gerenciar inexistente: status %d, esperado 404", rec.Code)
	}

	// excluir some de todas as listagens
	rec = fazer(t, h, "POST", "/contratos/"+numero+"/gerenciar", map[string]string{"action": "delete"})
	if rec.Code != http.StatusOK {
		t.Fatalf("excluir: status %d", rec.Code)
	}
	rec = fazer(t, h, "GET", "/contratos?status=all", nil)
	json.NewDecoder(rec.Body).Decode(&lista)
	if len(lista.Contracts) != 0 {
		t.Errorf("contrato excluído ainda listado: %d", len(lista.Contracts))
	}
}

func TestBuscaPorNome(t *testing.T) {
	h := montarServico(t)
	criarContrato(t, h, "Maria Silva", "BASIC - Anual")
	criarContrato(t, h, "Bruno Alves", "PREMIUM - Anual")

	var lista struct {
		Contracts []contrato.Contrato `json:"contracts"`
	}
	rec := fazer(t, h, "GET", "/contratos?search=Maria", nil)
	json.NewDecoder(rec.Body).Decode(&lista)
	if len(lista.Contracts) != 1 || lista.Contracts[0].Nome != "Maria Silva" {
		t.Errorf("busca por nome inesperada: %+v", lista.Contracts)
	}
}

func TestConfiguracoes(t *testing.T) {
	h := montarServico(t)

	var resposta struct {
		Settings empresa.Dados `json:"settings"`
	}
	rec := fazer(t, h, "GET", "/configuracoes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("buscar configurações: status %d", rec.Code)
	}
	json.NewDecoder(rec.Body).Decode(&resposta)
	if resposta.Settings.NIF != "NIF_PENDENTE" {
		t.Errorf("valor inicial inesperado: %+v", resposta.Settings)
	}

	rec = fazer(t, h, "PUT", "/configuracoes", map[string]string{
		"contratada_nif": "505123456",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("atualizar configurações: status %d", rec.Code)
	}

	rec = fazer(t, h, "GET", "/configuracoes", nil)
	json.NewDecoder(rec.Body).Decode(&resposta)
	if resposta.Settings.NIF != "505123456" {
		t.Errorf("NIF após atualização = %q", resposta.Settings.NIF)
	}
	if resposta.Settings.Nome != "MICAELA SAMPAIO" {
		t.Errorf("atualização parcial não pode mexer nas outras chaves: %+v", resposta.Settings)
	}
}

func TestListarPlanos(t *testing.T) {
	h := montarServico(t)

	rec := fazer(t, h, "GET", "/planos", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("listar planos: status %d", rec.Code)
	}
	var resposta struct {
		Planos []map[string]any `json:"planos"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resposta); err != nil {
		t.Fatal(err)
	}
	if len(resposta.Planos) != 4 {
		t.Errorf("catálogo com %d modalidades, esperado 4", len(resposta.Planos))
	}
}

func TestPainelExigeToken(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&contrato.Contrato{}, &empresa.Configuracao{}); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		JWTSecret:      "segredo-de-teste",
		AdminSenhaHash: "$2a$10$abcdefghijklmnopqrstuvABCDEFGHIJKLMNOPQRSTUVWXYZ012345",
		CriacaoRPS:     100,
		CriacaoBurst:   100,
	}
	h := NewRouter(db, cfg, metrics.New(prometheus.NewRegistry()))

	rec := fazer(t, h, "GET", "/contratos", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("listagem sem token: status %d, esperado 401", rec.Code)
	}
	rec = fazer(t, h, "PUT", "/configuracoes", map[string]string{"contratada_nif": "1"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("atualização sem token: status %d, esperado 401", rec.Code)
	}

	// a leitura pública de configurações segue aberta
	rec = fazer(t, h, "GET", "/configuracoes", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("leitura pública: status %d, esperado 200", rec.Code)
	}
}

func TestLimiteDeCriacao(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&contrato.Contrato{}, &empresa.Configuracao{}); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{CriacaoRPS: 1, CriacaoBurst: 1}
	h := NewRouter(db, cfg, metrics.New(prometheus.NewRegistry()))

	corpo := map[string]string{
		"nome": "Maria Silva", "nif": "987654321", "email": "maria@example.com",
		"whatsapp": "+351 912 345 678", "endereco": "Av. da República 45",
		"plano": "BASIC - Anual",
	}
	if rec := fazer(t, h, "POST", "/contratos", corpo); rec.Code != http.StatusCreated {
		t.Fatalf("primeira criação: status %d", rec.Code)
	}
	if rec := fazer(t, h, "POST", "/contratos", corpo); rec.Code != http.StatusTooManyRequests {
		t.Errorf("segunda criação imediata: status %d, esperado 429", rec.Code)
	}
}
