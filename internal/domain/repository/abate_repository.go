package repository

import "github.com/frigosul/frigosul-api/internal/domain/entity"

// AbateRepository porta de persistência de abates.
// GetForUpdate só faz sentido dentro de uma transação (SELECT FOR UPDATE).
type AbateRepository interface {
	Create(a *entity.Abate) error
	GetByID(id string) (*entity.Abate, error)
	GetForUpdate(id string) (*entity.Abate, error)
	List(status string, limit, offset int) ([]*entity.Abate, error)
	Update(a *entity.Abate) error
	UpdateStatus(id, status string) error
}
