package dto

import "time"

// FornecedorRequest criação/edição de fornecedor.
type FornecedorRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Endereco string `json:"endereco"`
	Cidade   string `json:"cidade"`
	UF       string `json:"uf"`
}

// FornecedorResponse fornecedor cadastrado.
type FornecedorResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Telefone  string    `json:"telefone"`
	Email     string    `json:"email"`
	Endereco  string    `json:"endereco"`
	Cidade    string    `json:"cidade"`
	UF        string    `json:"uf"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ClienteRequest criação/edição de cliente.
type ClienteRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
	Endereco  string `json:"endereco"`
	Cidade    string `json:"cidade"`
	UF        string `json:"uf"`
}

// ClienteResponse cliente cadastrado.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Documento string    `json:"documento"`
	Telefone  string    `json:"telefone"`
	Email     string    `json:"email"`
	Endereco  string    `json:"endereco"`
	Cidade    string    `json:"cidade"`
	UF        string    `json:"uf"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FuncionarioRequest criação/edição de funcionário.
type FuncionarioRequest struct {
	Nome     string `json:"nome"`
	Cargo    string `json:"cargo"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// FuncionarioResponse funcionário cadastrado.
type FuncionarioResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cargo     string    `json:"cargo"`
	Telefone  string    `json:"telefone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
