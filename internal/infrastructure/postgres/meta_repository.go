package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.MetaRepository = (*MetaRepo)(nil)

// MetaRepo implementação do porto MetaRepository sobre PostgreSQL. O índice
// único parcial (produto_id WHERE status = 'ativo') garante no banco a regra
// de uma meta ativa por produto.
type MetaRepo struct {
	q Querier
}

// NewMetaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMetaRepository(q Querier) *MetaRepo {
	return &MetaRepo{q: q}
}

const metaColumns = `id, produto_id, produto_nome, meta_por_animal, unidade, status, created_at, updated_at`

// Create persiste a meta.
func (r *MetaRepo) Create(m *entity.Meta) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO metas (`+metaColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.ProdutoID, m.ProdutoNome, m.MetaPorAnimal, m.Unidade, m.Status,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert meta: %w", err)
	}
	return nil
}

// GetByID busca meta por ID.
func (r *MetaRepo) GetByID(id string) (*entity.Meta, error) {
	return r.get(`SELECT `+metaColumns+` FROM metas WHERE id = $1`, id)
}

// GetAtivaPorProduto devolve a meta ativa do produto, ou nil.
func (r *MetaRepo) GetAtivaPorProduto(produtoID string) (*entity.Meta, error) {
	return r.get(`SELECT `+metaColumns+` FROM metas
		WHERE produto_id = $1 AND status = 'ativo'`, produtoID)
}

func (r *MetaRepo) get(query, arg string) (*entity.Meta, error) {
	var m entity.Meta
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.ProdutoID, &m.ProdutoNome, &m.MetaPorAnimal, &m.Unidade, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meta: %w", err)
	}
	return &m, nil
}

// ListAtivas todas as metas ativas.
func (r *MetaRepo) ListAtivas() ([]*entity.Meta, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+metaColumns+` FROM metas WHERE status = 'ativo' ORDER BY produto_nome`)
	if err != nil {
		return nil, fmt.Errorf("list metas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Meta
	for rows.Next() {
		var m entity.Meta
		if err := rows.Scan(
			&m.ID, &m.ProdutoID, &m.ProdutoNome, &m.MetaPorAnimal, &m.Unidade, &m.Status,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan meta: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Update regrava o valor da meta.
func (r *MetaRepo) Update(m *entity.Meta) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE metas SET meta_por_animal = $2, updated_at = $3 WHERE id = $1`,
		m.ID, m.MetaPorAnimal, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update meta: %w", err)
	}
	return nil
}

// UpdateStatus ativa/inativa a meta. Reativar com outra ativa viola o índice
// único parcial e devolve ErrDuplicate.
func (r *MetaRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE metas SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update meta status: %w", err)
	}
	return nil
}
