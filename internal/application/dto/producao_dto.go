package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemProducaoRequest linha de produção informada pelo operador.
// Perda nunca vem do cliente; é sempre derivada da meta.
type ItemProducaoRequest struct {
	ProdutoID  string          `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// CreateProducaoRequest entrada para registrar uma produção sobre um abate.
type CreateProducaoRequest struct {
	AbateID       string                `json:"abate_id"`
	ResponsavelID string                `json:"responsavel_id"`
	Data          time.Time             `json:"data"`
	Itens         []ItemProducaoRequest `json:"itens"`
}

// UpdateProducaoRequest edição pós-criação: apenas campos de topo.
type UpdateProducaoRequest struct {
	Data          time.Time `json:"data"`
	ResponsavelID string    `json:"responsavel_id"`
}

// ItemProducaoResponse linha com perda derivada.
type ItemProducaoResponse struct {
	ProdutoID    string          `json:"produto_id"`
	ProdutoNome  string          `json:"produto_nome"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Perda        decimal.Decimal `json:"perda"`
	UnidadeSigla string          `json:"unidade_sigla"`
}

// LoteGeradoResponse sub-lote de rastreabilidade criado pela produção.
type LoteGeradoResponse struct {
	LoteNumero        string          `json:"lote_numero"`
	ProdutoID         string          `json:"produto_id"`
	QuantidadeInicial decimal.Decimal `json:"quantidade_inicial"`
	QuantidadeAtual   decimal.Decimal `json:"quantidade_atual"`
	DataProducao      time.Time       `json:"data_producao"`
	DataValidade      time.Time       `json:"data_validade"`
}

// ProducaoResponse produção completa.
type ProducaoResponse struct {
	ID            string                 `json:"id"`
	Data          time.Time              `json:"data"`
	ResponsavelID string                 `json:"responsavel_id"`
	AbateID       string                 `json:"abate_id"`
	Lote          string                 `json:"lote"`
	Itens         []ItemProducaoResponse `json:"itens"`
	LotesGerados  []LoteGeradoResponse   `json:"lotes_gerados,omitempty"`
	Status        string                 `json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
}
