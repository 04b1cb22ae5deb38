package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.ProducaoRepository = (*ProducaoRepo)(nil)

// ProducaoRepo implementação do porto ProducaoRepository sobre PostgreSQL.
// Cabeçalho em producoes, itens em producao_itens.
type ProducaoRepo struct {
	q Querier
}

// NewProducaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProducaoRepository(q Querier) *ProducaoRepo {
	return &ProducaoRepo{q: q}
}

// Create persiste o cabeçalho e os itens da produção.
func (r *ProducaoRepo) Create(p *entity.Producao) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO producoes (id, data, responsavel_id, abate_id, lote, registrado_por, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Data, p.ResponsavelID, p.AbateID, p.Lote, p.RegistradoPor, p.Status,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert producao: %w", err)
	}
	for _, item := range p.Itens {
		_, err := r.q.Exec(ctx, `
			INSERT INTO producao_itens (producao_id, produto_id, produto_nome, quantidade, perda, unidade_sigla)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, item.ProdutoID, item.ProdutoNome, item.Quantidade, item.Perda, item.UnidadeSigla,
		)
		if err != nil {
			return fmt.Errorf("insert item producao: %w", err)
		}
	}
	return nil
}

// GetByID busca a produção com os itens.
func (r *ProducaoRepo) GetByID(id string) (*entity.Producao, error) {
	var p entity.Producao
	err := r.q.QueryRow(context.Background(), `
		SELECT id, data, responsavel_id, abate_id, lote, registrado_por, status, created_at, updated_at
		FROM producoes WHERE id = $1`, id).Scan(
		&p.ID, &p.Data, &p.ResponsavelID, &p.AbateID, &p.Lote, &p.RegistradoPor, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producao: %w", err)
	}
	itens, err := r.itens(p.ID)
	if err != nil {
		return nil, err
	}
	p.Itens = itens
	return &p, nil
}

func (r *ProducaoRepo) itens(producaoID string) ([]entity.ItemProducao, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT produto_id, produto_nome, quantidade, perda, unidade_sigla
		FROM producao_itens WHERE producao_id = $1 ORDER BY produto_nome`, producaoID)
	if err != nil {
		return nil, fmt.Errorf("list itens producao: %w", err)
	}
	defer rows.Close()

	var out []entity.ItemProducao
	for rows.Next() {
		var it entity.ItemProducao
		if err := rows.Scan(&it.ProdutoID, &it.ProdutoNome, &it.Quantidade, &it.Perda, &it.UnidadeSigla); err != nil {
			return nil, fmt.Errorf("scan item producao: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// List lista produções (com itens) da mais recente para a mais antiga.
func (r *ProducaoRepo) List(limit, offset int) ([]*entity.Producao, error) {
	return r.list(`
		SELECT id, data, responsavel_id, abate_id, lote, registrado_por, status, created_at, updated_at
		FROM producoes ORDER BY data DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByAbate produções de um abate.
func (r *ProducaoRepo) ListByAbate(abateID string) ([]*entity.Producao, error) {
	return r.list(`
		SELECT id, data, responsavel_id, abate_id, lote, registrado_por, status, created_at, updated_at
		FROM producoes WHERE abate_id = $1 ORDER BY data ASC`, abateID)
}

func (r *ProducaoRepo) list(query string, args ...any) ([]*entity.Producao, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list producoes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Producao
	for rows.Next() {
		var p entity.Producao
		if err := rows.Scan(
			&p.ID, &p.Data, &p.ResponsavelID, &p.AbateID, &p.Lote, &p.RegistradoPor, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producao: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		itens, err := r.itens(p.ID)
		if err != nil {
			return nil, err
		}
		p.Itens = itens
	}
	return out, nil
}

// UpdateCabecalho altera data e responsável; itens são imutáveis.
func (r *ProducaoRepo) UpdateCabecalho(id string, data time.Time, responsavelID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE producoes SET data = $2, responsavel_id = $3, updated_at = now() WHERE id = $1`,
		id, data, responsavelID,
	)
	if err != nil {
		return fmt.Errorf("update producao: %w", err)
	}
	return nil
}

// UpdateStatus ativa/inativa a produção.
func (r *ProducaoRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE producoes SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update producao status: %w", err)
	}
	return nil
}
