package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAbateRequest entrada para registro de um lote de abate.
type CreateAbateRequest struct {
	Data           time.Time       `json:"data"`
	FornecedorID   string          `json:"fornecedor_id"`
	NumeroAnimais  int             `json:"numero_animais"`
	Condenado      int             `json:"condenado"`
	CustoPorAnimal decimal.Decimal `json:"custo_por_animal"`
}

// AbateResponse abate com custo derivado e conta a pagar vinculada.
type AbateResponse struct {
	ID             string          `json:"id"`
	LoteID         string          `json:"lote_id"`
	Data           time.Time       `json:"data"`
	FornecedorID   string          `json:"fornecedor_id"`
	NumeroAnimais  int             `json:"numero_animais"`
	Condenado      int             `json:"condenado"`
	CustoPorAnimal decimal.Decimal `json:"custo_por_animal"`
	CustoTotal     decimal.Decimal `json:"custo_total"`
	Status         string          `json:"status"`
	RegistradoPor  string          `json:"registrado_por"`
	ContaPagarID   string          `json:"conta_pagar_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ContaPagarResponse título de conta a pagar.
type ContaPagarResponse struct {
	ID             string          `json:"id"`
	AbateID        string          `json:"abate_id"`
	FornecedorID   string          `json:"fornecedor_id"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"data_vencimento"`
	Status         string          `json:"status"`
}
