package auth

import (
	"net/http"
	"strings"
)

// Middleware protege as rotas administrativas com Bearer token. Sem senha
// configurada o serviço roda aberto, espelhando o comportamento original do
// painel em desenvolvimento.
func Middleware(secret, senhaHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || senhaHash == "" {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			if _, err := ValidarToken(secret, strings.TrimPrefix(h, "Bearer ")); err != nil {
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
