package producao_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/frigosul/frigosul-api/internal/domain/producao"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Cenário de referência: abate com 100 animais e 10 condenados, meta de
// 0,6/animal → meta teórica 54; produção de 50 → perda 4; progresso ≈ 92,6%.
func TestRendimento_CenarioReferencia(t *testing.T) {
	meta := producao.MetaTeorica(100, 10, dec("0.6"))
	assert.True(t, meta.Equal(dec("54")), "meta teórica: esperado 54, obtido %s", meta)

	perda := producao.Perda(meta, dec("50"))
	assert.True(t, perda.Equal(dec("4")), "perda: esperado 4, obtido %s", perda)

	progresso := producao.ProgressoPercentual(dec("50"), meta)
	// 50/54*100 = 92.59...
	assert.True(t, progresso.GreaterThan(dec("92.5")) && progresso.LessThan(dec("92.7")),
		"progresso esperado ≈ 92.6, obtido %s", progresso)
}

func TestMetaTeorica_TodosCondenados(t *testing.T) {
	assert.True(t, producao.MetaTeorica(10, 10, dec("0.6")).IsZero())
}

func TestPerda_ProducaoAcimaDaMeta(t *testing.T) {
	// produziu mais do que a meta: perda nunca é negativa
	assert.True(t, producao.Perda(dec("54"), dec("60")).IsZero())
}

func TestPerda_SemMeta(t *testing.T) {
	// produto sem meta: meta teórica zero, perda zero
	assert.True(t, producao.Perda(decimal.Zero, dec("30")).IsZero())
}

func TestProgressoPercentual_LimitadoACem(t *testing.T) {
	got := producao.ProgressoPercentual(dec("80"), dec("54"))
	assert.True(t, got.Equal(dec("100")), "progresso acima da meta deve saturar em 100, obtido %s", got)
}

func TestProgressoPercentual_MetaZero(t *testing.T) {
	assert.True(t, producao.ProgressoPercentual(dec("30"), decimal.Zero).IsZero(),
		"meta teórica zero exclui o produto da agregação")
}

func TestValores(t *testing.T) {
	vr := producao.ValorRealizado(dec("50"), dec("12.50"))
	assert.True(t, vr.Equal(dec("625")))

	vp := producao.ValorPerda(dec("4"), dec("7.00"))
	assert.True(t, vp.Equal(dec("28")))
}

func TestEficiencia(t *testing.T) {
	// 625 / (625+28) * 100 ≈ 95.71
	got := producao.Eficiencia(dec("625"), dec("28"))
	assert.True(t, got.GreaterThan(dec("95.7")) && got.LessThan(dec("95.8")), "obtido %s", got)
}

func TestEficiencia_DenominadorZero(t *testing.T) {
	assert.True(t, producao.Eficiencia(decimal.Zero, decimal.Zero).Equal(dec("100")),
		"sem valor realizado nem perda a eficiência é 100%% por definição")
}

// Recalcular duas vezes sobre os mesmos dados produz resultados idênticos
// (função pura, sem cache nem estado).
func TestRendimento_Idempotente(t *testing.T) {
	m1 := producao.MetaTeorica(100, 10, dec("0.6"))
	m2 := producao.MetaTeorica(100, 10, dec("0.6"))
	assert.True(t, m1.Equal(m2))

	p1 := producao.ProgressoPercentual(dec("50"), m1)
	p2 := producao.ProgressoPercentual(dec("50"), m2)
	assert.True(t, p1.Equal(p2))
}
