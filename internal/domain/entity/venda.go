package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status da venda em relação à NF-e.
const (
	VendaSemNota        = "sem_nota"
	VendaNotaGerada     = "nota_gerada"
	VendaNotaAssinada   = "nota_assinada"
	VendaNotaAutorizada = "nota_autorizada"
	VendaNotaRejeitada  = "nota_rejeitada"
	VendaCancelada      = "cancelada"
)

// Venda registro de venda; baixa o estoque dos itens na criação (transacional)
// e serve de entrada para a emissão de NF-e.
type Venda struct {
	ID            string
	ClienteID     string
	Data          time.Time
	Itens         []ItemVenda
	ValorFinal    decimal.Decimal
	Numero        int64  // número sequencial da nota
	ChaveAcesso   string // chave de acesso NF-e (44 dígitos), vazia até emissão
	XMLAssinado   string
	Protocolo     string // protocolo de autorização da SEFAZ
	Status        string
	RegistradoPor string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ItemVenda linha de venda.
type ItemVenda struct {
	ID            string
	VendaID       string
	ProdutoID     string
	ProdutoNome   string
	Quantidade    decimal.Decimal
	PrecoUnitario decimal.Decimal
	Subtotal      decimal.Decimal
	UnidadeSigla  string
}
