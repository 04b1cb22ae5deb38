// Package pdf gera o relatório financeiro em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: título + período                           │
//	│  ─────────────────────────────────────────────────  │
//	│  TABELA: indicador | valor                          │
//	│  ─────────────────────────────────────────────────  │
//	│  RESULTADO: vendas - custo dos abates               │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/relatorios"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ relatorios.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa relatorios.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// RelatorioFinanceiro gera o PDF e devolve os bytes.
func (g *MarotoPDFGenerator) RelatorioFinanceiro(r *dto.RelatorioFinanceiroDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(indicadorRow("Total de vendas", "R$ "+formatMoney(r.TotalVendas), false))
	m.AddRows(indicadorRow("Quantidade de vendas", fmt.Sprintf("%d", r.QuantidadeVendas), false))
	m.AddRows(indicadorRow("Custo dos abates", "R$ "+formatMoney(r.CustoAbates), false))
	m.AddRows(indicadorRow("Perdas de produção", formatQtd(r.ValorPerdas)+" kg", false))
	m.AddRows(indicadorRow("Contas a pagar pendentes", "R$ "+formatMoney(r.ContasPendentes), false))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(indicadorRow("RESULTADO DO PERÍODO", "R$ "+formatMoney(r.Resultado), true))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Resultado = total de vendas menos custo dos abates no período.",
			props.Text{Size: 6.5, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e período (dir).
func headerRow(r *dto.RelatorioFinanceiroDTO) core.Row {
	periodo := fmt.Sprintf("%s a %s",
		r.Inicio.Format("02/01/2006"), r.Fim.Format("02/01/2006"))

	return row.New(14).Add(
		col.New(7).Add(
			text.New("RELATÓRIO FINANCEIRO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// indicadorRow: par rótulo/valor; destaque em negrito para o resultado.
func indicadorRow(label, valor string, destaque bool) core.Row {
	labelProps := props.Text{Size: 9, Top: 2, Left: 1}
	valueProps := props.Text{Size: 9, Align: align.Right, Top: 2, Right: 1}
	if destaque {
		labelProps.Style = fontstyle.Bold
		labelProps.Size = 11
		labelProps.Color = colorPrimary
		valueProps.Style = fontstyle.Bold
		valueProps.Size = 11
		valueProps.Color = colorPrimary
	}
	return row.New(8).Add(
		col.New(7).Add(text.New(label, labelProps)),
		col.New(5).Add(text.New(valor, valueProps)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formata valor monetário com vírgula decimal e ponto de milhar.
// Ex: 1234567.80 → "1.234.567,80"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	inteiro, centavos := s[:len(s)-3], s[len(s)-2:]
	n := len(inteiro)
	buf := make([]byte, 0, n+n/3+4)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, inteiro[i])
	}
	out := string(buf) + "," + centavos
	if neg {
		return "-" + out
	}
	return out
}

// formatQtd quantidade com três casas e vírgula decimal.
func formatQtd(d decimal.Decimal) string {
	s := d.StringFixed(3)
	return s[:len(s)-4] + "," + s[len(s)-3:]
}
