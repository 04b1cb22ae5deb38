package relatorios

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// PDFGenerator gera o relatório financeiro em PDF (implementado na camada de
// infraestrutura).
type PDFGenerator interface {
	RelatorioFinanceiro(r *dto.RelatorioFinanceiroDTO) ([]byte, error)
}

// RelatorioUseCase consolida os números financeiros de um período e exporta
// em CSV ou PDF.
type RelatorioUseCase struct {
	analytics repository.AnalyticsRepository
	pdf       PDFGenerator
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(analytics repository.AnalyticsRepository, pdf PDFGenerator) *RelatorioUseCase {
	return &RelatorioUseCase{analytics: analytics, pdf: pdf}
}

// Financeiro consolida vendas, custos de abate, perdas e contas pendentes no
// intervalo [inicio, fim].
func (uc *RelatorioUseCase) Financeiro(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioFinanceiroDTO, error) {
	if fim.Before(inicio) {
		return nil, fmt.Errorf("%w: período invertido", domain.ErrInvalidInput)
	}

	totalVendas, qtdVendas, err := uc.analytics.VendasPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	custoAbates, err := uc.analytics.CustoAbatesPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	valorPerdas, err := uc.analytics.PerdaPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	contasPendentes, _, err := uc.analytics.ContasPendentes(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.RelatorioFinanceiroDTO{
		Inicio:           inicio,
		Fim:              fim,
		CustoAbates:      custoAbates,
		TotalVendas:      totalVendas,
		QuantidadeVendas: qtdVendas,
		ValorPerdas:      valorPerdas,
		ContasPendentes:  contasPendentes,
		Resultado:        totalVendas.Sub(custoAbates),
	}, nil
}

// FinanceiroCSV exporta o consolidado em CSV com cabeçalhos sem acentos, para
// compatibilidade com planilhas legadas que não leem UTF-8.
func (uc *RelatorioUseCase) FinanceiroCSV(ctx context.Context, inicio, fim time.Time) ([]byte, error) {
	r, err := uc.Financeiro(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	rows := [][]string{
		{"inicio", "fim", "custo_abates", "total_vendas", "quantidade_vendas", "valor_perdas", "contas_pendentes", "resultado"},
		{
			r.Inicio.Format("2006-01-02"),
			r.Fim.Format("2006-01-02"),
			r.CustoAbates.StringFixed(2),
			r.TotalVendas.StringFixed(2),
			fmt.Sprintf("%d", r.QuantidadeVendas),
			r.ValorPerdas.StringFixed(2),
			r.ContasPendentes.StringFixed(2),
			r.Resultado.StringFixed(2),
		},
	}
	for _, row := range rows {
		for i, campo := range row {
			row[i] = SemAcentos(campo)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FinanceiroPDF exporta o consolidado em PDF.
func (uc *RelatorioUseCase) FinanceiroPDF(ctx context.Context, inicio, fim time.Time) ([]byte, error) {
	r, err := uc.Financeiro(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RelatorioFinanceiro(r)
}

// SemAcentos remove diacríticos ("Produção" vira "Producao").
// O transformer carrega estado; montado por chamada para ser seguro sob concorrência.
func SemAcentos(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
