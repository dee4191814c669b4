package empresa

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository expõe as operações sobre as configurações da contratada.
type Repository interface {
	Obter(db *gorm.DB, chave string) (string, error)
	Definir(db *gorm.DB, chave, valor string) error
	ObterDados(db *gorm.DB) (Dados, error)
	SemearPadroes(db *gorm.DB) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Valores de primeira inicialização; os placeholders sinalizam no texto do
// contrato que o cadastro da empresa ainda não foi preenchido.
var padroes = map[string]string{
	ChaveNome:     "MICAELA SAMPAIO",
	ChaveNIF:      "NIF_PENDENTE",
	ChaveEndereco: "ENDERECO_PENDENTE",
}

func (r *repositoryImpl) Obter(db *gorm.DB, chave string) (string, error) {
	var c Configuracao
	err := db.First(&c, "chave = ?", chave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return c.Valor, err
}

// Definir grava a chave com semântica de upsert.
func (r *repositoryImpl) Definir(db *gorm.DB, chave, valor string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor"}),
	}).Create(&Configuracao{Chave: chave, Valor: valor}).Error
}

func (r *repositoryImpl) ObterDados(db *gorm.DB) (Dados, error) {
	var dados Dados
	var err error
	if dados.Nome, err = r.Obter(db, ChaveNome); err != nil {
		return dados, err
	}
	if dados.NIF, err = r.Obter(db, ChaveNIF); err != nil {
		return dados, err
	}
	dados.Endereco, err = r.Obter(db, ChaveEndereco)
	return dados, err
}

// SemearPadroes grava os valores iniciais sem sobrescrever ajustes já
// feitos pelo painel.
func (r *repositoryImpl) SemearPadroes(db *gorm.DB) error {
	for chave, valor := range padroes {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Configuracao{Chave: chave, Valor: valor}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
