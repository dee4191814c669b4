package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/clubeestetica/api-contratos/internal/metrics"
)

// statusRecorder captura o status respondido para log e métricas.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MiddlewareLog registra cada requisição com um id próprio e alimenta o
// contador de requisições.
func MiddlewareLog(m *metrics.Metricas) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			m.RequisicoesHTTP.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
			log.WithFields(log.Fields{
				"requisicao": uuid.NewString(),
				"metodo":     r.Method,
				"caminho":    r.URL.Path,
				"status":     rec.status,
				"duracao":    time.Since(inicio).String(),
			}).Info("requisição atendida")
		})
	}
}

// MiddlewareLimite contém a criação de contratos pelo formulário público.
func MiddlewareLimite(limite *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limite.Allow() {
				http.Error(w, "Muitas requisições, tente novamente em instantes", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
