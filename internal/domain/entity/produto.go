package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de produto.
const (
	ProdutoVenda        = "VENDA"
	ProdutoUsoInterno   = "USO_INTERNO"
	ProdutoMateriaPrima = "MATERIA_PRIMA"
)

// Produto representa um item do catálogo com saldo corrente de estoque.
// Quantidade é um saldo acumulado: só muda pelo incremento transacional da
// produção ou por movimentação manual de estoque, sempre de forma atômica.
type Produto struct {
	ID           string
	Nome         string
	TipoProduto  string // VENDA, USO_INTERNO, MATERIA_PRIMA
	Quantidade   decimal.Decimal
	CustoUnitario decimal.Decimal
	PrecoVenda   decimal.Decimal // apenas tipo VENDA
	UnidadeID    string
	UnidadeSigla string // denormalizado (KG, UN, CX...)
	ControlaLote bool
	DiasValidade int // validade dos lotes gerados, em dias
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TipoProdutoValido informa se o tipo é um dos aceitos.
func TipoProdutoValido(tipo string) bool {
	switch tipo {
	case ProdutoVenda, ProdutoUsoInterno, ProdutoMateriaPrima:
		return true
	}
	return false
}

// AceitaMeta informa se o produto pode carregar meta de rendimento
// (apenas VENDA e MATERIA_PRIMA).
func (p *Produto) AceitaMeta() bool {
	return p.TipoProduto == ProdutoVenda || p.TipoProduto == ProdutoMateriaPrima
}

// ValorReferencia devolve o preço de venda quando existir, senão o custo
// unitário (base do valor realizado no rendimento).
func (p *Produto) ValorReferencia() decimal.Decimal {
	if p.PrecoVenda.GreaterThan(decimal.Zero) {
		return p.PrecoVenda
	}
	return p.CustoUnitario
}
