package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// DashboardUseCase monta os cartões do painel. As consultas são independentes
// e rodam em paralelo; a primeira falha aborta o conjunto.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analytics repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics}
}

// Summary devolve o resumo do dia e do mês corrente.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	inicioDia := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := &dto.DashboardSummaryDTO{}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	colher := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	colher(func() error {
		total, _, err := uc.analytics.VendasPeriodo(ctx, inicioDia, now)
		if err != nil {
			return err
		}
		mu.Lock()
		out.VendasHoje = total
		mu.Unlock()
		return nil
	})
	colher(func() error {
		total, qtd, err := uc.analytics.VendasPeriodo(ctx, inicioMes, now)
		if err != nil {
			return err
		}
		mu.Lock()
		out.VendasMes = total
		out.QuantidadeVendasMes = qtd
		mu.Unlock()
		return nil
	})
	colher(func() error {
		n, err := uc.analytics.CountAbatesPorStatus(ctx, entity.AbateAguardandoProcessamento)
		if err != nil {
			return err
		}
		mu.Lock()
		out.AbatesAguardando = n
		mu.Unlock()
		return nil
	})
	colher(func() error {
		total, qtd, err := uc.analytics.ContasPendentes(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		out.ContasPendentes = total
		out.QtdContasPendentes = qtd
		mu.Unlock()
		return nil
	})
	colher(func() error {
		perda, err := uc.analytics.PerdaPeriodo(ctx, inicioMes, now)
		if err != nil {
			return err
		}
		mu.Lock()
		out.PerdaMes = perda
		mu.Unlock()
		return nil
	})

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
