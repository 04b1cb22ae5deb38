package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregação para dashboard e relatórios.
// COALESCE garante zero em períodos sem linhas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// VendasPeriodo total vendido e número de vendas no intervalo, excluindo canceladas.
func (r *AnalyticsRepo) VendasPeriodo(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	var total decimal.Decimal
	var quantidade int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor_final), 0), COUNT(*)
		FROM vendas
		WHERE data >= $1 AND data <= $2 AND status <> $3`,
		from, to, entity.VendaCancelada,
	).Scan(&total, &quantidade)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("vendas periodo: %w", err)
	}
	return total, quantidade, nil
}

// CustoAbatesPeriodo soma de custo_total dos abates não cancelados no intervalo.
func (r *AnalyticsRepo) CustoAbatesPeriodo(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(custo_total), 0)
		FROM abates
		WHERE data >= $1 AND data <= $2 AND status <> $3`,
		from, to, entity.AbateCancelado,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("custo abates periodo: %w", err)
	}
	return total, nil
}

// PerdaPeriodo soma das perdas das produções ativas no intervalo.
func (r *AnalyticsRepo) PerdaPeriodo(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(i.perda), 0)
		FROM producao_itens i
		JOIN producoes p ON p.id = i.producao_id
		WHERE p.data >= $1 AND p.data <= $2 AND p.status = $3`,
		from, to, entity.ProducaoAtiva,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("perda periodo: %w", err)
	}
	return total, nil
}

// ContasPendentes valor total e quantidade de contas pendentes.
func (r *AnalyticsRepo) ContasPendentes(ctx context.Context) (decimal.Decimal, int, error) {
	var total decimal.Decimal
	var quantidade int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0), COUNT(*)
		FROM contas_pagar WHERE status = $1`,
		entity.ContaPendente,
	).Scan(&total, &quantidade)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("contas pendentes: %w", err)
	}
	return total, quantidade, nil
}

// CountAbatesPorStatus número de abates no status dado.
func (r *AnalyticsRepo) CountAbatesPorStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM abates WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count abates: %w", err)
	}
	return n, nil
}
