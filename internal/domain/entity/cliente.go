package entity

import "time"

// Cliente cadastro de cliente (destinatário de vendas e NF-e).
type Cliente struct {
	ID        string
	Nome      string
	Documento string // CNPJ ou CPF, sem máscara
	Telefone  string
	Email     string
	Endereco  string
	Cidade    string
	UF        string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
