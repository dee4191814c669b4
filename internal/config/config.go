package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config agrupa toda a configuração do serviço.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// DBDriver aceita "sqlite" ou "postgres"; DBDSN é o caminho do arquivo
	// no primeiro caso e a DSN completa no segundo.
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DB_DSN" envDefault:"contratos.db"`

	// Sem ADMIN_SENHA_HASH o painel administrativo roda aberto (modo de
	// desenvolvimento).
	AdminSenhaHash string `env:"ADMIN_SENHA_HASH"`
	JWTSecret      string `env:"JWT_SECRET"`

	// Webhook opcional avisado a cada novo contrato.
	WebhookURL string `env:"WEBHOOK_URL"`

	AssinaturaEmpresa string `env:"ASSINATURA_EMPRESA_PATH" envDefault:"assets/assinatura_micaela.png"`

	// Limite de criação de contratos pelo formulário público.
	CriacaoRPS   float64 `env:"CRIACAO_RPS" envDefault:"1"`
	CriacaoBurst int     `env:"CRIACAO_BURST" envDefault:"5"`
}

// Load lê a configuração das variáveis de ambiente. O arquivo .env é
// opcional, usado apenas em desenvolvimento local.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
