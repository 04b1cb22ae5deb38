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

var _ repository.ContaPagarRepository = (*ContaPagarRepo)(nil)

// ContaPagarRepo implementação do porto ContaPagarRepository sobre PostgreSQL.
type ContaPagarRepo struct {
	q Querier
}

// NewContaPagarRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewContaPagarRepository(q Querier) *ContaPagarRepo {
	return &ContaPagarRepo{q: q}
}

const contaColumns = `id, abate_id, fornecedor_id, descricao, valor, data_vencimento,
	status, created_at, updated_at`

// Create persiste a conta. abate_id é único: um título por abate.
func (r *ContaPagarRepo) Create(c *entity.ContaPagar) error {
	query := `
		INSERT INTO contas_pagar (` + contaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.AbateID, c.FornecedorID, c.Descricao, c.Valor, c.DataVencimento,
		c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert conta a pagar: %w", err)
	}
	return nil
}

// GetByID busca conta por ID.
func (r *ContaPagarRepo) GetByID(id string) (*entity.ContaPagar, error) {
	return r.get(`SELECT `+contaColumns+` FROM contas_pagar WHERE id = $1`, id)
}

// GetByAbate busca a conta vinculada a um abate.
func (r *ContaPagarRepo) GetByAbate(abateID string) (*entity.ContaPagar, error) {
	return r.get(`SELECT `+contaColumns+` FROM contas_pagar WHERE abate_id = $1`, abateID)
}

func (r *ContaPagarRepo) get(query, id string) (*entity.ContaPagar, error) {
	var c entity.ContaPagar
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.AbateID, &c.FornecedorID, &c.Descricao, &c.Valor, &c.DataVencimento,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta a pagar: %w", err)
	}
	return &c, nil
}

// List lista contas com filtro opcional de status.
func (r *ContaPagarRepo) List(status string, limit, offset int) ([]*entity.ContaPagar, error) {
	query := `SELECT ` + contaColumns + ` FROM contas_pagar`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY data_vencimento ASC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY data_vencimento ASC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contas a pagar: %w", err)
	}
	defer rows.Close()

	var out []*entity.ContaPagar
	for rows.Next() {
		var c entity.ContaPagar
		if err := rows.Scan(
			&c.ID, &c.AbateID, &c.FornecedorID, &c.Descricao, &c.Valor, &c.DataVencimento,
			&c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conta a pagar: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// UpdateStatus marca a conta como paga (ou volta a pendente).
func (r *ContaPagarRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE contas_pagar SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update conta status: %w", err)
	}
	return nil
}
