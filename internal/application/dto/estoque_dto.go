package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimentacaoRequest lançamento manual de estoque.
type RegistrarMovimentacaoRequest struct {
	ProdutoID   string          `json:"produto_id"`
	Tipo        string          `json:"tipo"` // entrada | saida
	Quantidade  decimal.Decimal `json:"quantidade"`
	Motivo      string          `json:"motivo"`
	Observacoes string          `json:"observacoes"`
}

// MovimentacaoResponse movimentação registrada.
type MovimentacaoResponse struct {
	ID         string          `json:"id"`
	ProdutoID  string          `json:"produto_id"`
	Tipo       string          `json:"tipo"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Motivo     string          `json:"motivo"`
	CreatedAt  time.Time       `json:"created_at"`
	CreatedBy  string          `json:"created_by"`
}
