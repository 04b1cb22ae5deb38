package repository

import "github.com/frigosul/frigosul-api/internal/domain/entity"

// MovimentacaoRepository porta de persistência de movimentações manuais.
type MovimentacaoRepository interface {
	Create(m *entity.MovimentacaoEstoque) error
	List(limit, offset int) ([]*entity.MovimentacaoEstoque, error)
	ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error)
}
