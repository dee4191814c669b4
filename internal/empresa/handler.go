package empresa

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /configuracoes
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	dados, err := h.Repository.ObterDados(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]Dados{"settings": dados})
}

// PUT /configuracoes
// Aceita qualquer subconjunto das três chaves reconhecidas.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		Nome     *string `json:"contratada_nome"`
		NIF      *string `json:"contratada_nif"`
		Endereco *string `json:"contratada_endereco"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	pares := map[string]*string{
		ChaveNome:     corpo.Nome,
		ChaveNIF:      corpo.NIF,
		ChaveEndereco: corpo.Endereco,
	}
	for chave, valor := range pares {
		if valor == nil {
			continue
		}
		if err := h.Repository.Definir(h.DB, chave, *valor); err != nil {
			http.Error(w, "Erro ao salvar configuração", http.StatusInternalServerError)
			return
		}
	}

	dados, err := h.Repository.ObterDados(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "settings": dados})
}
