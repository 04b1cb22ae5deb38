package entity

import "time"

// Funcionario cadastro de funcionário (responsável por produções).
type Funcionario struct {
	ID        string
	Nome      string
	Cargo     string
	Telefone  string
	Email     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
