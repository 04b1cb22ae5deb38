package repository

import "github.com/frigosul/frigosul-api/internal/domain/entity"

// ContaPagarRepository porta de persistência de contas a pagar.
// A criação acontece somente dentro da transação do abate.
type ContaPagarRepository interface {
	Create(c *entity.ContaPagar) error
	GetByID(id string) (*entity.ContaPagar, error)
	GetByAbate(abateID string) (*entity.ContaPagar, error)
	List(status string, limit, offset int) ([]*entity.ContaPagar, error)
	UpdateStatus(id, status string) error
}
