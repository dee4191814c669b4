package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Notificador envia avisos de eventos do sistema para um webhook externo.
// O envio é de melhor esforço: falhas ficam no log e nunca chegam ao
// cliente.
type Notificador struct {
	URL    string
	Client *http.Client
}

func NewNotificador(url string) *Notificador {
	return &Notificador{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// ContratoCriado posta um aviso de nova adesão.
func (n *Notificador) ContratoCriado(numero, nome, planoID string) {
	if n == nil || n.URL == "" {
		return
	}
	payload := map[string]string{
		"mensagem": "Novo contrato de adesão assinado",
		"numero":   numero,
		"nome":     nome,
		"plano":    planoID,
	}
	body, _ := json.Marshal(payload)

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.WithError(err).Warn("erro ao enviar webhook de novo contrato")
		return
	}
	defer resp.Body.Close()
}
