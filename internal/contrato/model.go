package contrato

import "time"

// Status possíveis de um contrato. A exclusão definitiva remove a linha,
// não existe um terceiro estado.
const (
	StatusAtivo     = "active"
	StatusArquivado = "archived"
)

// Contrato é o registro persistido de uma adesão ao clube. Depois de criado
// só status e tags mudam; o número é imutável.
type Contrato struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Numero     string    `gorm:"size:20;uniqueIndex;not null" json:"contract_number"`
	Nome       string    `gorm:"not null" json:"nome"`
	NIF        string    `gorm:"not null" json:"nif"`
	WhatsApp   string    `gorm:"not null" json:"whatsapp"`
	Email      string    `gorm:"not null" json:"email"`
	Endereco   string    `gorm:"not null" json:"endereco"`
	Plano      string    `gorm:"not null" json:"plano"`
	Assinatura string    `gorm:"type:text" json:"signature_data,omitempty"` // data URI base64 de um PNG
	Status     string    `gorm:"size:20;default:active" json:"status"`
	Tags       string    `gorm:"default:''" json:"tags"` // texto livre separado por vírgulas
	CriadoEm   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Contrato) TableName() string { return "contratos" }
