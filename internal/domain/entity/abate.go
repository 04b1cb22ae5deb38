package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do abate. O abate nunca é apagado; apenas transita de status.
const (
	AbateAguardandoProcessamento = "aguardando_processamento"
	AbateEmProcessamento         = "em_processamento"
	AbateFinalizado              = "finalizado"
	AbateCancelado               = "cancelado"
)

// Abate representa um lote de abate: animais recebidos de um fornecedor com o
// custo por animal acordado na compra. CustoTotal é derivado e sempre
// recalculado a partir de NumeroAnimais × CustoPorAnimal.
type Abate struct {
	ID             string
	LoteID         string // código derivado "LOTE-<timestamp>"
	Data           time.Time
	FornecedorID   string
	NumeroAnimais  int
	Condenado      int // animais condenados na inspeção (Condenado <= NumeroAnimais)
	CustoPorAnimal decimal.Decimal
	CustoTotal     decimal.Decimal
	Status         string
	RegistradoPor  string // UserID
	RegistradoNome string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AnimaisValidos devolve o número de animais que contam para metas de
// rendimento (exclui condenados).
func (a *Abate) AnimaisValidos() int {
	return a.NumeroAnimais - a.Condenado
}

// PodeProcessar informa se o abate aceita uma nova produção.
func (a *Abate) PodeProcessar() bool {
	return a.Status == AbateAguardandoProcessamento || a.Status == AbateEmProcessamento
}
