package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/clubeestetica/api-contratos/internal/auth"
	"github.com/clubeestetica/api-contratos/internal/config"
	"github.com/clubeestetica/api-contratos/internal/contrato"
	"github.com/clubeestetica/api-contratos/internal/empresa"
	"github.com/clubeestetica/api-contratos/internal/metrics"
	"github.com/clubeestetica/api-contratos/internal/notificacao"
	"github.com/clubeestetica/api-contratos/internal/pdf"
	"github.com/clubeestetica/api-contratos/internal/plano"
)

// NewRouter monta todas as rotas do serviço.
func NewRouter(db *gorm.DB, cfg *config.Config, m *metrics.Metricas) http.Handler {
	gerador := pdf.NewGerador(cfg.AssinaturaEmpresa)
	notificador := notificacao.NewNotificador(cfg.WebhookURL)

	contratoHandler := contrato.NewHandler(db, gerador, notificador, m)
	empresaHandler := empresa.NewHandler(db)
	authHandler := auth.NewHandler(cfg.JWTSecret, cfg.AdminSenhaHash)

	limite := rate.NewLimiter(rate.Limit(cfg.CriacaoRPS), cfg.CriacaoBurst)

	r := mux.NewRouter()
	r.Use(MiddlewareLog(m))

	// Rotas públicas do formulário de adesão
	r.Handle("/contratos", MiddlewareLimite(limite)(http.HandlerFunc(contratoHandler.Criar))).Methods("POST")
	r.HandleFunc("/contratos/{numero}", contratoHandler.Buscar).Methods("GET")
	r.HandleFunc("/contratos/{numero}/pdf", contratoHandler.GerarPDF).Methods("GET")
	r.HandleFunc("/planos", listarPlanos).Methods("GET")
	r.HandleFunc("/configuracoes", empresaHandler.Buscar).Methods("GET")
	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Rotas do painel administrativo
	admin := r.PathPrefix("/").Subrouter()
	admin.Use(mux.MiddlewareFunc(auth.Middleware(cfg.JWTSecret, cfg.AdminSenhaHash)))
	admin.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	admin.HandleFunc("/contratos/{numero}/gerenciar", contratoHandler.Gerenciar).Methods("POST")
	admin.HandleFunc("/configuracoes", empresaHandler.Atualizar).Methods("PUT")

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)
}

// GET /planos
func listarPlanos(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"planos": plano.Listar()})
}
