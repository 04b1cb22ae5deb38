package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColumns = `id, nome, tipo_produto, quantidade, custo_unitario, preco_venda,
	unidade_id, unidade_sigla, controla_lote, dias_validade, status, created_at, updated_at`

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.TipoProduto, p.Quantidade, p.CustoUnitario, p.PrecoVenda,
		p.UnidadeID, p.UnidadeSigla, p.ControlaLote, p.DiasValidade, p.Status,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID busca um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(context.Background(),
		`SELECT `+produtoColumns+` FROM produtos WHERE id = $1`, id).Scan(
		&p.ID, &p.Nome, &p.TipoProduto, &p.Quantidade, &p.CustoUnitario, &p.PrecoVenda,
		&p.UnidadeID, &p.UnidadeSigla, &p.ControlaLote, &p.DiasValidade, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// GetForUpdate busca o produto travando a linha (SELECT ... FOR UPDATE).
// Só faz sentido dentro de uma transação; no pool a trava morre na hora.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(context.Background(),
		`SELECT `+produtoColumns+` FROM produtos WHERE id = $1 FOR UPDATE`, id).Scan(
		&p.ID, &p.Nome, &p.TipoProduto, &p.Quantidade, &p.CustoUnitario, &p.PrecoVenda,
		&p.UnidadeID, &p.UnidadeSigla, &p.ControlaLote, &p.DiasValidade, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return &p, nil
}

// List lista produtos com filtro opcional por tipo.
func (r *ProdutoRepo) List(tipo string, limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos`
	args := []any{}
	if tipo != "" {
		query += ` WHERE tipo_produto = $1 ORDER BY nome ASC LIMIT $2 OFFSET $3`
		args = append(args, tipo, limit, offset)
	} else {
		query += ` ORDER BY nome ASC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(
			&p.ID, &p.Nome, &p.TipoProduto, &p.Quantidade, &p.CustoUnitario, &p.PrecoVenda,
			&p.UnidadeID, &p.UnidadeSigla, &p.ControlaLote, &p.DiasValidade, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update regrava dados cadastrais e preços. Quantidade não passa por aqui;
// só muda via IncrementarQuantidade.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, tipo_produto = $3, custo_unitario = $4, preco_venda = $5,
		    unidade_id = $6, unidade_sigla = $7, controla_lote = $8, dias_validade = $9,
		    updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.TipoProduto, p.CustoUnitario, p.PrecoVenda,
		p.UnidadeID, p.UnidadeSigla, p.ControlaLote, p.DiasValidade, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateStatus ativa/inativa o produto.
func (r *ProdutoRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update produto status: %w", err)
	}
	return nil
}

// IncrementarQuantidade aplica o delta direto no SQL. O incremento no servidor
// elimina lost updates entre transações concorrentes.
func (r *ProdutoRepo) IncrementarQuantidade(id string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade = quantidade + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("incrementar quantidade: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
