package contrato

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Repository expõe as operações de persistência de contratos.
type Repository interface {
	Criar(db *gorm.DB, dto *NovoContratoDTO) (string, error)
	ListarTodos(db *gorm.DB, status string) ([]Contrato, error)
	BuscarPorNome(db *gorm.DB, nome, status string) ([]Contrato, error)
	BuscarPorNumero(db *gorm.DB, numero string) (*Contrato, error)
	DefinirStatus(db *gorm.DB, numero, status string) (bool, error)
	Deletar(db *gorm.DB, numero string) (bool, error)
	DefinirTags(db *gorm.DB, numero, tags string) (bool, error)
	ListarTags(db *gorm.DB) ([]string, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Serializa a emissão de números dentro do processo; junto com a transação
// abaixo garante que contagem e inserção enxergam o mesmo estado e que duas
// criações concorrentes nunca cunham o mesmo número.
var numeroMu sync.Mutex

// Criar cunha o próximo número do ano (CTR-<ano>-0001, 0002, ...) e insere o
// contrato com status ativo e tags vazias, tudo na mesma transação.
func (r *repositoryImpl) Criar(db *gorm.DB, dto *NovoContratoDTO) (string, error) {
	numeroMu.Lock()
	defer numeroMu.Unlock()

	var numero string
	err := db.Transaction(func(tx *gorm.DB) error {
		ano := time.Now().Year()
		var total int64
		if err := tx.Model(&Contrato{}).
			Where("numero LIKE ?", fmt.Sprintf("CTR-%d-%%", ano)).
			Count(&total).Error; err != nil {
			return err
		}
		numero = fmt.Sprintf("CTR-%d-%04d", ano, total+1)

		c := Contrato{
			Numero:     numero,
			Nome:       dto.Nome,
			NIF:        dto.NIF,
			WhatsApp:   dto.WhatsApp,
			Email:      dto.Email,
			Endereco:   dto.Endereco,
			Plano:      dto.Plano,
			Assinatura: dto.Assinatura,
			Status:     StatusAtivo,
			Tags:       "",
		}
		return tx.Create(&c).Error
	})
	if err != nil {
		return "", err
	}
	return numero, nil
}

// aplicarFiltroStatus traduz o filtro da consulta ("active" por omissão,
// "archived" ou "all") para a cláusula correspondente.
func aplicarFiltroStatus(q *gorm.DB, status string) *gorm.DB {
	switch status {
	case StatusArquivado:
		return q.Where("status = ?", StatusArquivado)
	case "all":
		return q
	default:
		return q.Where("status = ? OR status IS NULL", StatusAtivo)
	}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, status string) ([]Contrato, error) {
	contratos := []Contrato{}
	err := aplicarFiltroStatus(db.Model(&Contrato{}), status).
		Order("criado_em DESC").
		Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nome, status string) ([]Contrato, error) {
	contratos := []Contrato{}
	q := db.Model(&Contrato{}).Where("nome LIKE ?", "%"+nome+"%")
	err := aplicarFiltroStatus(q, status).
		Order("criado_em DESC").
		Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) BuscarPorNumero(db *gorm.DB, numero string) (*Contrato, error) {
	var c Contrato
	err := db.Where("numero = ?", numero).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) DefinirStatus(db *gorm.DB, numero, status string) (bool, error) {
	res := db.Model(&Contrato{}).Where("numero = ?", numero).Update("status", status)
	return res.RowsAffected > 0, res.Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, numero string) (bool, error) {
	res := db.Where("numero = ?", numero).Delete(&Contrato{})
	return res.RowsAffected > 0, res.Error
}

func (r *repositoryImpl) DefinirTags(db *gorm.DB, numero, tags string) (bool, error) {
	res := db.Model(&Contrato{}).Where("numero = ?", numero).Update("tags", tags)
	return res.RowsAffected > 0, res.Error
}

// ListarTags reúne o conjunto distinto de tags de todos os contratos,
// já aparadas, sem vazios e em ordem alfabética.
func (r *repositoryImpl) ListarTags(db *gorm.DB) ([]string, error) {
	var valores []string
	err := db.Model(&Contrato{}).
		Distinct("tags").
		Where("tags IS NOT NULL AND tags <> ''").
		Pluck("tags", &valores).Error
	if err != nil {
		return nil, err
	}

	vistas := map[string]bool{}
	tags := []string{}
	for _, v := range valores {
		for _, t := range strings.Split(v, ",") {
			t = strings.TrimSpace(t)
			if t != "" && !vistas[t] {
				vistas[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}
