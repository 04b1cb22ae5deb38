package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação manual de estoque.
const (
	MovimentacaoEntrada = "entrada"
	MovimentacaoSaida   = "saida"
)

// MovimentacaoEstoque lançamento manual que ajusta Produto.Quantidade
// (entrada soma, saída subtrai), atômico com o próprio registro.
type MovimentacaoEstoque struct {
	ID          string
	ProdutoID   string
	Tipo        string // entrada | saida
	Quantidade  decimal.Decimal
	Motivo      string
	Observacoes string
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
