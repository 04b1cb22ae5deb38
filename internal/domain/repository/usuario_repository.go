package repository

import "github.com/frigosul/frigosul-api/internal/domain/entity"

// UsuarioRepository porta de persistência de usuários.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}

// EmpresaRepository porta de persistência do emitente (registro único).
type EmpresaRepository interface {
	Get() (*entity.Empresa, error)
	Upsert(e *entity.Empresa) error
}
