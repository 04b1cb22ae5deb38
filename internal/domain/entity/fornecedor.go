package entity

import "time"

// Status comum dos cadastros (soft delete por status).
const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

// Fornecedor cadastro de fornecedor de animais/insumos.
type Fornecedor struct {
	ID        string
	Nome      string
	CNPJ      string
	Telefone  string
	Email     string
	Endereco  string
	Cidade    string
	UF        string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
