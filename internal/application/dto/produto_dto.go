package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProdutoRequest criação/edição de produto. Quantidade não é editável por
// aqui; só muda via produção ou movimentação manual.
type ProdutoRequest struct {
	Nome          string          `json:"nome"`
	TipoProduto   string          `json:"tipo_produto"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	UnidadeID     string          `json:"unidade_id"`
	UnidadeSigla  string          `json:"unidade_sigla"`
	ControlaLote  bool            `json:"controla_lote"`
	DiasValidade  int             `json:"dias_validade"`
}

// ProdutoResponse produto com saldo corrente.
type ProdutoResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	TipoProduto   string          `json:"tipo_produto"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	UnidadeSigla  string          `json:"unidade_sigla"`
	ControlaLote  bool            `json:"controla_lote"`
	DiasValidade  int             `json:"dias_validade"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
