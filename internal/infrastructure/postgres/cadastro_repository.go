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

var (
	_ repository.FornecedorRepository  = (*FornecedorRepo)(nil)
	_ repository.ClienteRepository     = (*ClienteRepo)(nil)
	_ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)
)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

const fornecedorColumns = `id, nome, cnpj, telefone, email, endereco, cidade, uf, status, created_at, updated_at`

func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO fornecedores (`+fornecedorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		f.ID, f.Nome, f.CNPJ, f.Telefone, f.Email, f.Endereco, f.Cidade, f.UF,
		f.Status, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(),
		`SELECT `+fornecedorColumns+` FROM fornecedores WHERE id = $1`, id).Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.Telefone, &f.Email, &f.Endereco, &f.Cidade, &f.UF,
		&f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

func (r *FornecedorRepo) List(limit, offset int) ([]*entity.Fornecedor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+fornecedorColumns+` FROM fornecedores ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var out []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(
			&f.ID, &f.Nome, &f.CNPJ, &f.Telefone, &f.Email, &f.Endereco, &f.Cidade, &f.UF,
			&f.Status, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE fornecedores
		SET nome = $2, cnpj = $3, telefone = $4, email = $5, endereco = $6, cidade = $7,
		    uf = $8, updated_at = $9
		WHERE id = $1`,
		f.ID, f.Nome, f.CNPJ, f.Telefone, f.Email, f.Endereco, f.Cidade, f.UF, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

func (r *FornecedorRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE fornecedores SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update fornecedor status: %w", err)
	}
	return nil
}

// ClienteRepo implementação do porto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, nome, documento, telefone, email, endereco, cidade, uf, status, created_at, updated_at`

func (r *ClienteRepo) Create(c *entity.Cliente) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO clientes (`+clienteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Nome, c.Documento, c.Telefone, c.Email, c.Endereco, c.Cidade, c.UF,
		c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(),
		`SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id).Scan(
		&c.ID, &c.Nome, &c.Documento, &c.Telefone, &c.Email, &c.Endereco, &c.Cidade, &c.UF,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+clienteColumns+` FROM clientes ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.Nome, &c.Documento, &c.Telefone, &c.Email, &c.Endereco, &c.Cidade, &c.UF,
			&c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *ClienteRepo) Update(c *entity.Cliente) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE clientes
		SET nome = $2, documento = $3, telefone = $4, email = $5, endereco = $6, cidade = $7,
		    uf = $8, updated_at = $9
		WHERE id = $1`,
		c.ID, c.Nome, c.Documento, c.Telefone, c.Email, c.Endereco, c.Cidade, c.UF, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update cliente status: %w", err)
	}
	return nil
}

// FuncionarioRepo implementação do porto FuncionarioRepository sobre PostgreSQL.
type FuncionarioRepo struct {
	q Querier
}

// NewFuncionarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFuncionarioRepository(q Querier) *FuncionarioRepo {
	return &FuncionarioRepo{q: q}
}

const funcionarioColumns = `id, nome, cargo, telefone, email, status, created_at, updated_at`

func (r *FuncionarioRepo) Create(f *entity.Funcionario) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO funcionarios (`+funcionarioColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID, f.Nome, f.Cargo, f.Telefone, f.Email, f.Status, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

func (r *FuncionarioRepo) GetByID(id string) (*entity.Funcionario, error) {
	var f entity.Funcionario
	err := r.q.QueryRow(context.Background(),
		`SELECT `+funcionarioColumns+` FROM funcionarios WHERE id = $1`, id).Scan(
		&f.ID, &f.Nome, &f.Cargo, &f.Telefone, &f.Email, &f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return &f, nil
}

func (r *FuncionarioRepo) List(limit, offset int) ([]*entity.Funcionario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+funcionarioColumns+` FROM funcionarios ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Funcionario
	for rows.Next() {
		var f entity.Funcionario
		if err := rows.Scan(
			&f.ID, &f.Nome, &f.Cargo, &f.Telefone, &f.Email, &f.Status, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *FuncionarioRepo) Update(f *entity.Funcionario) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE funcionarios
		SET nome = $2, cargo = $3, telefone = $4, email = $5, updated_at = $6
		WHERE id = $1`,
		f.ID, f.Nome, f.Cargo, f.Telefone, f.Email, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update funcionario: %w", err)
	}
	return nil
}

func (r *FuncionarioRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE funcionarios SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update funcionario status: %w", err)
	}
	return nil
}
