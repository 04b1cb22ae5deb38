package repository

import "github.com/frigosul/frigosul-api/internal/domain/entity"

// MetaRepository porta de persistência das metas de rendimento.
type MetaRepository interface {
	Create(m *entity.Meta) error
	GetByID(id string) (*entity.Meta, error)
	// GetAtivaPorProduto devolve a meta ativa do produto, ou nil se não houver.
	GetAtivaPorProduto(produtoID string) (*entity.Meta, error)
	ListAtivas() ([]*entity.Meta, error)
	Update(m *entity.Meta) error
	UpdateStatus(id, status string) error
}
