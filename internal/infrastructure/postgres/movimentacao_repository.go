package postgres

import (
	"context"
	"fmt"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre PostgreSQL.
// Movimentações são append-only; não há update nem delete.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

const movColumns = `id, produto_id, tipo, quantidade, motivo, observacoes, created_at, created_by`

// Create persiste a movimentação.
func (r *MovimentacaoRepo) Create(m *entity.MovimentacaoEstoque) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO movimentacoes_estoque (`+movColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.ProdutoID, m.Tipo, m.Quantidade, m.Motivo, m.Observacoes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// List histórico completo, mais recente primeiro.
func (r *MovimentacaoRepo) List(limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	return r.list(`SELECT `+movColumns+` FROM movimentacoes_estoque
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByProduto histórico de um produto.
func (r *MovimentacaoRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	return r.list(`SELECT `+movColumns+` FROM movimentacoes_estoque
		WHERE produto_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, produtoID, limit, offset)
}

func (r *MovimentacaoRepo) list(query string, args ...any) ([]*entity.MovimentacaoEstoque, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovimentacaoEstoque
	for rows.Next() {
		var m entity.MovimentacaoEstoque
		if err := rows.Scan(
			&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &m.Motivo, &m.Observacoes,
			&m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
