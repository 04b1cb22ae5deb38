package nfe_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigosul/frigosul-api/pkg/nfe"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestDV valida que o módulo 11 da chave de acesso produz exatamente o dígito
// esperado para vetores calculados manualmente.
//
// Vetor: base = cUF(43) + AAMM(2403) + CNPJ(12345678000195) + mod(55) +
// série(001) + nNF(000000042) + tpEmis(1) + cNF(87654321) → DV = 4.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBase43  = "4324031234567800019555001000000042187654321"
	testDV      = 4
	testCNPJ    = "12345678000195"
	testCNF     = "87654321"
)

func TestDV_VetorExato(t *testing.T) {
	dv, err := nfe.DV(testBase43)
	require.NoError(t, err)
	assert.Equal(t, testDV, dv, "o DV deve coincidir com o vetor de referência do módulo 11")
}

func TestDV_RestoMenorQueDois(t *testing.T) {
	// "4" seguido de 42 zeros: soma = 4*4 = 16, resto 5, DV 6. Já um número
	// vizinho (nNF 43) cai em resto 10 → DV 1 pela regra do manual.
	dv, err := nfe.DV("4" + strings.Repeat("0", 42))
	require.NoError(t, err)
	assert.Equal(t, 6, dv)

	dv, err = nfe.DV("4324031234567800019555001000000043187654321")
	require.NoError(t, err)
	assert.Equal(t, 1, dv)
}

func TestDV_TamanhoInvalido(t *testing.T) {
	_, err := nfe.DV("123")
	assert.Error(t, err)
}

func TestDV_CaractereNaoNumerico(t *testing.T) {
	_, err := nfe.DV(strings.Repeat("1", 42) + "X")
	assert.Error(t, err)
}

func TestMontar_ChaveCompleta(t *testing.T) {
	p := buildParams()
	chave, err := nfe.Montar(p)
	require.NoError(t, err)
	assert.Len(t, chave, 44)
	assert.Equal(t, testBase43+"4", chave)
}

// TestMontar_Determinista verifica que os mesmos parâmetros produzem sempre a
// mesma chave (função pura).
func TestMontar_Determinista(t *testing.T) {
	c1, err1 := nfe.Montar(buildParams())
	c2, err2 := nfe.Montar(buildParams())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, c1, c2)
}

func TestMontar_NumeroDiferenteMudaChave(t *testing.T) {
	p1 := buildParams()
	p2 := buildParams()
	p2.Numero = 43

	c1, _ := nfe.Montar(p1)
	c2, _ := nfe.Montar(p2)
	assert.NotEqual(t, c1, c2)
}

func TestMontar_SerieComZerosAEsquerda(t *testing.T) {
	p := buildParams()
	p.Serie = "1"
	chave, err := nfe.Montar(p)
	require.NoError(t, err)
	assert.Equal(t, "001", chave[22:25], "a série deve ser preenchida com zeros à esquerda")
}

func TestMontar_CNPJComMascara(t *testing.T) {
	p := buildParams()
	p.CNPJ = "12.345.678/0001-95"
	chave, err := nfe.Montar(p)
	require.NoError(t, err)
	assert.Equal(t, testBase43+"4", chave, "a máscara do CNPJ deve ser ignorada")
}

// ── Erros de validação ────────────────────────────────────────────────────────

func TestMontar_ErroSeNil(t *testing.T) {
	_, err := nfe.Montar(nil)
	assert.Error(t, err)
}

func TestMontar_ErroSeCNPJInvalido(t *testing.T) {
	p := buildParams()
	p.CNPJ = "123"
	_, err := nfe.Montar(p)
	assert.Error(t, err)
}

func TestMontar_ErroSeNumeroForaDoIntervalo(t *testing.T) {
	p := buildParams()
	p.Numero = 0
	_, err := nfe.Montar(p)
	assert.Error(t, err)

	p.Numero = 1_000_000_000
	_, err = nfe.Montar(p)
	assert.Error(t, err)
}

func TestFormatar(t *testing.T) {
	got := nfe.Formatar("12345678")
	assert.Equal(t, "1234 5678", got)
}

// ── helper ────────────────────────────────────────────────────────────────────

func buildParams() *nfe.ChaveParams {
	return &nfe.ChaveParams{
		UF:             "43",
		Emissao:        time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		CNPJ:           testCNPJ,
		Serie:          "001",
		Numero:         42,
		TpEmis:         "1",
		CodigoNumerico: testCNF,
	}
}
