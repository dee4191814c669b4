package contrato

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/clubeestetica/api-contratos/internal/empresa"
	"github.com/clubeestetica/api-contratos/internal/metrics"
	"github.com/clubeestetica/api-contratos/internal/notificacao"
	"github.com/clubeestetica/api-contratos/internal/pdf"
	"github.com/clubeestetica/api-contratos/internal/plano"
)

type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Empresa     empresa.Repository
	Gerador     *pdf.Gerador
	Notificador *notificacao.Notificador
	Metricas    *metrics.Metricas
}

func NewHandler(db *gorm.DB, gerador *pdf.Gerador, notificador *notificacao.Notificador, m *metrics.Metricas) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Empresa:     empresa.NewRepository(),
		Gerador:     gerador,
		Notificador: notificador,
		Metricas:    m,
	}
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto NovoContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if campo := dto.Validar(); campo != "" {
		http.Error(w, "Campo obrigatório: "+campo, http.StatusBadRequest)
		return
	}

	numero, err := h.Repository.Criar(h.DB, &dto)
	if err != nil {
		log.WithError(err).Error("falha ao criar contrato")
		http.Error(w, "Erro ao criar contrato", http.StatusInternalServerError)
		return
	}
	h.Metricas.ContratosCriados.Inc()
	go h.Notificador.ContratoCriado(numero, dto.Nome, dto.Plano)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"success":         true,
		"contract_number": numero,
	})
}

// GET /contratos?search=&status=&includeTags=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := q.Get("status")
	if status == "" {
		status = StatusAtivo
	}

	var (
		contratos []Contrato
		err       error
	)
	if busca := q.Get("search"); busca != "" {
		contratos, err = h.Repository.BuscarPorNome(h.DB, busca, status)
	} else {
		contratos, err = h.Repository.ListarTodos(h.DB, status)
	}
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}

	resposta := map[string]any{"contracts": contratos}
	if q.Get("includeTags") == "true" {
		tags, err := h.Repository.ListarTags(h.DB)
		if err != nil {
			http.Error(w, "Erro ao listar tags", http.StatusInternalServerError)
			return
		}
		resposta["tags"] = tags
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}

// GET /contratos/{numero}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	numero := mux.Vars(r)["numero"]
	c, err := h.Repository.BuscarPorNumero(h.DB, numero)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}

	dados, err := h.Empresa.ObterDados(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"contract": c, "settings": dados})
}

// POST /contratos/{numero}/gerenciar
// Ações: archive, restore, delete, updateTags.
func (h *Handler) Gerenciar(w http.ResponseWriter, r *http.Request) {
	numero := mux.Vars(r)["numero"]
	var dto GerenciarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorNumero(h.DB, numero); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}

	var (
		ok  bool
		err error
		msg string
	)
	switch dto.Action {
	case "archive":
		ok, err = h.Repository.DefinirStatus(h.DB, numero, StatusArquivado)
		msg = "Contrato arquivado com sucesso"
	case "restore":
		ok, err = h.Repository.DefinirStatus(h.DB, numero, StatusAtivo)
		msg = "Contrato restaurado com sucesso"
	case "delete":
		ok, err = h.Repository.Deletar(h.DB, numero)
		msg = "Contrato excluído permanentemente"
	case "updateTags":
		if dto.Tags == nil {
			http.Error(w, "Tags são obrigatórias para updateTags", http.StatusBadRequest)
			return
		}
		ok, err = h.Repository.DefinirTags(h.DB, numero, *dto.Tags)
		msg = "Tags atualizadas com sucesso"
	default:
		http.Error(w, "Ação inválida: use archive, restore, delete ou updateTags", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao gerenciar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": ok, "message": msg})
}

// GET /contratos/{numero}/pdf
func (h *Handler) GerarPDF(w http.ResponseWriter, r *http.Request) {
	numero := mux.Vars(r)["numero"]
	c, err := h.Repository.BuscarPorNumero(h.DB, numero)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}

	dados, err := h.Empresa.ObterDados(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
		return
	}

	agora := time.Now()
	texto := MontarTexto(c, plano.Resolver(c.Plano), dados, agora)
	conteudo, err := h.Gerador.Gerar(texto, pdf.DadosContrato{
		Numero:     c.Numero,
		Nome:       c.Nome,
		NIF:        c.NIF,
		Email:      c.Email,
		WhatsApp:   c.WhatsApp,
		Endereco:   c.Endereco,
		Assinatura: c.Assinatura,
	}, dados.Nome, agora)
	if err != nil {
		h.Metricas.PDFsGerados.WithLabelValues("erro").Inc()
		log.WithError(err).Error("falha ao gerar PDF do contrato")
		http.Error(w, "Erro ao gerar PDF", http.StatusInternalServerError)
		return
	}
	h.Metricas.PDFsGerados.WithLabelValues("ok").Inc()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", numero+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(conteudo)))
	w.Write(conteudo)
}
