package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas read-only de agregação para dashboard e
// relatórios. Sem efeitos colaterais.
type AnalyticsRepository interface {
	// VendasPeriodo total vendido e número de vendas no intervalo.
	VendasPeriodo(ctx context.Context, from, to time.Time) (total decimal.Decimal, quantidade int, err error)
	// CustoAbatesPeriodo soma de custoTotal dos abates não cancelados no intervalo.
	CustoAbatesPeriodo(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// PerdaPeriodo soma das perdas registradas nas produções ativas do intervalo.
	PerdaPeriodo(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// ContasPendentes valor total e quantidade de contas a pagar pendentes.
	ContasPendentes(ctx context.Context) (total decimal.Decimal, quantidade int, err error)
	// CountAbatesPorStatus número de abates no status dado.
	CountAbatesPorStatus(ctx context.Context, status string) (int, error)
}
