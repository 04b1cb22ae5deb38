package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status da produção (soft delete por status).
const (
	ProducaoAtiva   = "ativo"
	ProducaoInativa = "inativo"
)

// Producao representa um turno de produção que consome um abate e registra as
// quantidades produzidas por produto. Os itens são imutáveis após a criação;
// correções exigem inativar a produção e lançar movimentação manual.
type Producao struct {
	ID            string
	Data          time.Time
	ResponsavelID string
	AbateID       string
	Lote          string // herdado do abate de origem
	Itens         []ItemProducao
	LotesGerados  []LoteGerado
	RegistradoPor string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ItemProducao linha de produção de um produto.
// Perda = max(metaTeorica - Quantidade, 0); zero quando o produto não tem meta.
type ItemProducao struct {
	ProdutoID    string
	ProdutoNome  string
	Quantidade   decimal.Decimal
	Perda        decimal.Decimal
	UnidadeSigla string
}

// LoteGerado sub-lote de rastreabilidade para produtos com controle de lote.
type LoteGerado struct {
	ID               string
	ProducaoID       string
	LoteNumero       string
	ProdutoID        string
	QuantidadeInicial decimal.Decimal
	QuantidadeAtual  decimal.Decimal
	DataProducao     time.Time
	DataValidade     time.Time
}
