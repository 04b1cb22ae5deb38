package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.AbateRepository = (*AbateRepo)(nil)

// AbateRepo implementação do porto AbateRepository sobre PostgreSQL (usável com pool ou tx).
type AbateRepo struct {
	q Querier
}

// NewAbateRepository constrói o adaptador de persistência de abates. Passar pool ou tx (Querier).
func NewAbateRepository(q Querier) *AbateRepo {
	return &AbateRepo{q: q}
}

const abateColumns = `id, lote_id, data, fornecedor_id, numero_animais, condenado,
	custo_por_animal, custo_total, status, registrado_por, registrado_nome, created_at, updated_at`

// Create persiste um novo abate.
func (r *AbateRepo) Create(a *entity.Abate) error {
	query := `
		INSERT INTO abates (` + abateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.LoteID, a.Data, a.FornecedorID, a.NumeroAnimais, a.Condenado,
		a.CustoPorAnimal, a.CustoTotal, a.Status, a.RegistradoPor, a.RegistradoNome,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert abate: %w", err)
	}
	return nil
}

// GetByID busca um abate por ID.
func (r *AbateRepo) GetByID(id string) (*entity.Abate, error) {
	return r.get(`SELECT `+abateColumns+` FROM abates WHERE id = $1`, id)
}

// GetForUpdate busca o abate travando a linha (SELECT FOR UPDATE). Só faz
// sentido dentro de uma transação; a segunda tx concorrente bloqueia aqui.
func (r *AbateRepo) GetForUpdate(id string) (*entity.Abate, error) {
	return r.get(`SELECT `+abateColumns+` FROM abates WHERE id = $1 FOR UPDATE`, id)
}

func (r *AbateRepo) get(query, id string) (*entity.Abate, error) {
	var a entity.Abate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.LoteID, &a.Data, &a.FornecedorID, &a.NumeroAnimais, &a.Condenado,
		&a.CustoPorAnimal, &a.CustoTotal, &a.Status, &a.RegistradoPor, &a.RegistradoNome,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get abate: %w", err)
	}
	return &a, nil
}

// List lista abates do mais recente para o mais antigo, com filtro opcional de status.
func (r *AbateRepo) List(status string, limit, offset int) ([]*entity.Abate, error) {
	query := `SELECT ` + abateColumns + ` FROM abates`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY data DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY data DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list abates: %w", err)
	}
	defer rows.Close()

	var out []*entity.Abate
	for rows.Next() {
		var a entity.Abate
		if err := rows.Scan(
			&a.ID, &a.LoteID, &a.Data, &a.FornecedorID, &a.NumeroAnimais, &a.Condenado,
			&a.CustoPorAnimal, &a.CustoTotal, &a.Status, &a.RegistradoPor, &a.RegistradoNome,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan abate: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Update regrava os fatores de custo e a data; status não muda por aqui.
func (r *AbateRepo) Update(a *entity.Abate) error {
	query := `
		UPDATE abates
		SET data = $2, numero_animais = $3, condenado = $4, custo_por_animal = $5,
		    custo_total = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Data, a.NumeroAnimais, a.Condenado, a.CustoPorAnimal, a.CustoTotal, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update abate: %w", err)
	}
	return nil
}

// UpdateStatus transiciona o status do abate.
func (r *AbateRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE abates SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update abate status: %w", err)
	}
	return nil
}
