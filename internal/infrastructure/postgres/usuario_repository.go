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
	_ repository.UsuarioRepository = (*UsuarioRepo)(nil)
	_ repository.EmpresaRepository = (*EmpresaRepo)(nil)
)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id, email, senha_hash, nome, perfil, status, created_at, updated_at`

// Create persiste o usuário. Email duplicado devolve ErrEmailAlreadyExists.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO usuarios (`+usuarioColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Perfil, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID busca usuário por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.get(`SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id)
}

// FindByEmail busca usuário por email.
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.get(`SELECT `+usuarioColumns+` FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) get(query, arg string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Perfil, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// EmpresaRepo implementação do porto EmpresaRepository (registro único do emitente).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

const empresaColumns = `id, razao_social, nome_fantasia, cnpj, inscricao_estadual,
	endereco, cidade, uf, codigo_uf, telefone, email, created_at, updated_at`

// Get devolve o emitente, ou nil se não configurado.
func (r *EmpresaRepo) Get() (*entity.Empresa, error) {
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(),
		`SELECT `+empresaColumns+` FROM empresa LIMIT 1`).Scan(
		&e.ID, &e.RazaoSocial, &e.NomeFantasia, &e.CNPJ, &e.InscricaoEstadual,
		&e.Endereco, &e.Cidade, &e.UF, &e.CodigoUF, &e.Telefone, &e.Email,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// Upsert grava o emitente (insert ou update pelo ID).
func (r *EmpresaRepo) Upsert(e *entity.Empresa) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO empresa (`+empresaColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			razao_social = EXCLUDED.razao_social,
			nome_fantasia = EXCLUDED.nome_fantasia,
			cnpj = EXCLUDED.cnpj,
			inscricao_estadual = EXCLUDED.inscricao_estadual,
			endereco = EXCLUDED.endereco,
			cidade = EXCLUDED.cidade,
			uf = EXCLUDED.uf,
			codigo_uf = EXCLUDED.codigo_uf,
			telefone = EXCLUDED.telefone,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at`,
		e.ID, e.RazaoSocial, e.NomeFantasia, e.CNPJ, e.InscricaoEstadual,
		e.Endereco, e.Cidade, e.UF, e.CodigoUF, e.Telefone, e.Email,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert empresa: %w", err)
	}
	return nil
}
