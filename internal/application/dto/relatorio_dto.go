package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RelatorioFinanceiroDTO consolidação financeira de um período.
type RelatorioFinanceiroDTO struct {
	Inicio           time.Time       `json:"inicio"`
	Fim              time.Time       `json:"fim"`
	CustoAbates      decimal.Decimal `json:"custo_abates"`
	TotalVendas      decimal.Decimal `json:"total_vendas"`
	QuantidadeVendas int             `json:"quantidade_vendas"`
	ValorPerdas      decimal.Decimal `json:"valor_perdas"`
	ContasPendentes  decimal.Decimal `json:"contas_pendentes"`
	Resultado        decimal.Decimal `json:"resultado"` // vendas - custo abates
}

// DashboardSummaryDTO cartões de resumo do painel.
type DashboardSummaryDTO struct {
	VendasHoje          decimal.Decimal `json:"vendas_hoje"`
	VendasMes           decimal.Decimal `json:"vendas_mes"`
	QuantidadeVendasMes int             `json:"quantidade_vendas_mes"`
	AbatesAguardando    int             `json:"abates_aguardando"`
	ContasPendentes     decimal.Decimal `json:"contas_pendentes"`
	QtdContasPendentes  int             `json:"qtd_contas_pendentes"`
	PerdaMes            decimal.Decimal `json:"perda_mes"` // perdas de produção no mês corrente
}
