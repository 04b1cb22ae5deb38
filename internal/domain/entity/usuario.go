package entity

import "time"

// Perfis de acesso. Movimentação manual de estoque exige admin ou gerente.
const (
	PerfilAdmin    = "admin"
	PerfilGerente  = "gerente"
	PerfilOperador = "operador"
)

// Usuario conta de acesso ao sistema.
type Usuario struct {
	ID        string
	Email     string
	SenhaHash string
	Nome      string
	Perfil    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
