package repository

import (
	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
)

// ProdutoRepository porta de persistência do catálogo de produtos.
// IncrementarQuantidade aplica o delta direto no SQL (quantidade = quantidade + $n)
// para evitar lost updates; nunca read-modify-write na aplicação.
type ProdutoRepository interface {
	Create(p *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetForUpdate trava a linha do produto na transação corrente. Toda
	// checagem de saldo que precede uma saída lê por aqui; ler sem trava abre
	// janela para duas baixas enxergarem o mesmo saldo.
	GetForUpdate(id string) (*entity.Produto, error)
	List(tipo string, limit, offset int) ([]*entity.Produto, error)
	Update(p *entity.Produto) error
	UpdateStatus(id, status string) error
	IncrementarQuantidade(id string, delta decimal.Decimal) error
}
