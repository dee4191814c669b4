package auth

import (
	"encoding/json"
	"net/http"
)

// Handler trata o login do painel administrativo.
type Handler struct {
	Secret    string
	SenhaHash string
}

func NewHandler(secret, senhaHash string) *Handler {
	return &Handler{Secret: secret, SenhaHash: senhaHash}
}

// POST /admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if h.SenhaHash == "" || !VerificarSenha(h.SenhaHash, corpo.Senha) {
		http.Error(w, "Senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(h.Secret)
	if err != nil {
		http.Error(w, "Erro ao emitir token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
