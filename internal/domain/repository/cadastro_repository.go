package repository

import "github.com/frigosul/frigosul-api/internal/domain/entity"

// FornecedorRepository porta de persistência de fornecedores.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	List(limit, offset int) ([]*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
	UpdateStatus(id, status string) error
}

// ClienteRepository porta de persistência de clientes.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(c *entity.Cliente) error
	UpdateStatus(id, status string) error
}

// FuncionarioRepository porta de persistência de funcionários.
type FuncionarioRepository interface {
	Create(f *entity.Funcionario) error
	GetByID(id string) (*entity.Funcionario, error)
	List(limit, offset int) ([]*entity.Funcionario, error)
	Update(f *entity.Funcionario) error
	UpdateStatus(id, status string) error
}
