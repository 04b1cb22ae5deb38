package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Meta alvo de rendimento por produto: quantidade esperada por animal válido
// (não condenado). No máximo uma meta ativa por produto.
type Meta struct {
	ID            string
	ProdutoID     string
	ProdutoNome   string
	MetaPorAnimal decimal.Decimal
	Unidade       string // sigla denormalizada
	Status        string // ativo | inativo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
