package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de conta a pagar.
const (
	ContaPendente = "pendente"
	ContaPaga     = "pago"
)

// ContaPagar título gerado automaticamente na criação de um abate
// (valor = custo total do lote), no mesmo batch atômico.
type ContaPagar struct {
	ID             string
	AbateID        string
	FornecedorID   string
	Descricao      string
	Valor          decimal.Decimal
	DataVencimento time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
