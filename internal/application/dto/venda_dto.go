package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemVendaRequest linha de venda.
type ItemVendaRequest struct {
	ProdutoID     string          `json:"produto_id"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"` // zero = usar preço do catálogo
}

// CreateVendaRequest criação de venda (baixa estoque transacionalmente).
type CreateVendaRequest struct {
	ClienteID string             `json:"cliente_id"`
	Data      time.Time          `json:"data"`
	Itens     []ItemVendaRequest `json:"itens"`
}

// ItemVendaResponse linha de venda persistida.
type ItemVendaResponse struct {
	ProdutoID     string          `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// VendaResponse venda completa com estado da NF-e.
type VendaResponse struct {
	ID          string              `json:"id"`
	ClienteID   string              `json:"cliente_id"`
	ClienteNome string              `json:"cliente_nome"`
	Data        time.Time           `json:"data"`
	Itens       []ItemVendaResponse `json:"itens"`
	ValorFinal  decimal.Decimal     `json:"valor_final"`
	Numero      int64               `json:"numero"`
	ChaveAcesso string              `json:"chave_acesso,omitempty"`
	Protocolo   string              `json:"protocolo,omitempty"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// EmitirNFeResponse resultado da emissão.
type EmitirNFeResponse struct {
	VendaID     string `json:"venda_id"`
	ChaveAcesso string `json:"chave_acesso"`
	Protocolo   string `json:"protocolo,omitempty"`
	Status      string `json:"status"`
}
