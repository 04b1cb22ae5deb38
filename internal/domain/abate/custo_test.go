package abate_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/frigosul/frigosul-api/internal/domain/abate"
)

// Cenário de referência: 100 animais a R$ 5,00 → custo total R$ 500,00.
func TestCustoTotal_Cenario(t *testing.T) {
	got := abate.CustoTotal(100, decimal.NewFromInt(5))
	assert.True(t, got.Equal(decimal.NewFromInt(500)), "esperado 500, obtido %s", got)
}

func TestCustoTotal_CustoZero(t *testing.T) {
	got := abate.CustoTotal(37, decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestCustoTotal_CustoFracionario(t *testing.T) {
	// 3 × 2,505 = 7,515 exato, sem erro de ponto flutuante
	got := abate.CustoTotal(3, decimal.RequireFromString("2.505"))
	assert.True(t, got.Equal(decimal.RequireFromString("7.515")), "obtido %s", got)
}

func TestNovoLoteID(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	assert.Equal(t, "LOTE-1700000000", abate.NovoLoteID(ts))
}

func TestValidar_Aceita(t *testing.T) {
	assert.NoError(t, abate.Validar(100, 10, decimal.NewFromInt(5)))
	assert.NoError(t, abate.Validar(1, 0, decimal.Zero))
	assert.NoError(t, abate.Validar(50, 50, decimal.NewFromInt(2)), "condenado igual ao total é permitido")
}

func TestValidar_Rejeita(t *testing.T) {
	cases := []struct {
		nome           string
		animais, cond  int
		custoPorAnimal decimal.Decimal
	}{
		{"zero animais", 0, 0, decimal.NewFromInt(5)},
		{"animais negativos", -1, 0, decimal.NewFromInt(5)},
		{"condenado negativo", 10, -1, decimal.NewFromInt(5)},
		{"condenado maior que animais", 10, 11, decimal.NewFromInt(5)},
		{"custo negativo", 10, 0, decimal.NewFromInt(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Error(t, abate.Validar(tc.animais, tc.cond, tc.custoPorAnimal))
		})
	}
}
