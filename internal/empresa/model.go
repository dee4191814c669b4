package empresa

// Chaves reconhecidas da tabela de configurações. Outras chaves enviadas
// pelo painel são simplesmente ignoradas.
const (
	ChaveNome     = "contratada_nome"
	ChaveNIF      = "contratada_nif"
	ChaveEndereco = "contratada_endereco"
)

// Configuracao é um par chave/valor persistido. Uma linha lógica por chave,
// com semântica de upsert.
type Configuracao struct {
	Chave string `gorm:"primaryKey" json:"chave"`
	Valor string `json:"valor"`
}

func (Configuracao) TableName() string { return "configuracoes" }

// Dados reúne os três valores da contratada interpolados no texto do
// contrato.
type Dados struct {
	Nome     string `json:"contratada_nome"`
	NIF      string `json:"contratada_nif"`
	Endereco string `json:"contratada_endereco"`
}
