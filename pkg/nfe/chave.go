// Package nfe implementa o cálculo da chave de acesso da NF-e (modelo 55):
// 44 dígitos = cUF(2) + AAMM(4) + CNPJ(14) + mod(2) + série(3) + nNF(9) +
// tpEmis(1) + cNF(8) + cDV(1), com dígito verificador por módulo 11
// (pesos 2..9 aplicados da direita para a esquerda).
package nfe

import (
	"fmt"
	"strings"
	"time"
)

// ModeloNFe modelo do documento fiscal (NF-e = 55).
const ModeloNFe = "55"

// ChaveParams parâmetros para montagem da chave de acesso.
type ChaveParams struct {
	UF             string    // código IBGE da UF (2 dígitos, ex. "43")
	Emissao        time.Time // usada para AAMM
	CNPJ           string    // CNPJ do emitente (14 dígitos, sem máscara)
	Serie          string    // série da nota (até 3 dígitos)
	Numero         int64     // número da nota (1..999999999)
	TpEmis         string    // tipo de emissão ("1" = normal)
	CodigoNumerico string    // cNF (8 dígitos)
}

// Montar valida os parâmetros, monta os 43 dígitos e devolve a chave completa com o DV.
func Montar(p *ChaveParams) (string, error) {
	if p == nil {
		return "", fmt.Errorf("nfe: parâmetros nulos")
	}
	uf := soDigitos(p.UF)
	if len(uf) != 2 {
		return "", fmt.Errorf("nfe: UF deve ter 2 dígitos, recebido %q", p.UF)
	}
	cnpj := soDigitos(p.CNPJ)
	if len(cnpj) != 14 {
		return "", fmt.Errorf("nfe: CNPJ deve ter 14 dígitos, recebido %q", p.CNPJ)
	}
	if p.Emissao.IsZero() {
		return "", fmt.Errorf("nfe: data de emissão obrigatória")
	}
	if p.Numero <= 0 || p.Numero > 999_999_999 {
		return "", fmt.Errorf("nfe: número da nota fora do intervalo: %d", p.Numero)
	}
	serie := soDigitos(p.Serie)
	if serie == "" || len(serie) > 3 {
		return "", fmt.Errorf("nfe: série inválida: %q", p.Serie)
	}
	tpEmis := p.TpEmis
	if tpEmis == "" {
		tpEmis = "1"
	}
	if len(tpEmis) != 1 {
		return "", fmt.Errorf("nfe: tpEmis inválido: %q", p.TpEmis)
	}
	cnf := soDigitos(p.CodigoNumerico)
	if len(cnf) != 8 {
		return "", fmt.Errorf("nfe: código numérico deve ter 8 dígitos, recebido %q", p.CodigoNumerico)
	}

	base := uf +
		p.Emissao.Format("0601") + // AAMM
		cnpj +
		ModeloNFe +
		strings.Repeat("0", 3-len(serie)) + serie +
		fmt.Sprintf("%09d", p.Numero) +
		tpEmis +
		cnf
	if len(base) != 43 {
		return "", fmt.Errorf("nfe: base da chave com %d dígitos (esperado 43)", len(base))
	}
	dv, err := DV(base)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", base, dv), nil
}

// DV calcula o dígito verificador (módulo 11) dos 43 primeiros dígitos da chave.
// Resto 0 ou 1 resulta em DV 0, conforme o Manual de Orientação do Contribuinte.
func DV(base43 string) (int, error) {
	if len(base43) != 43 {
		return 0, fmt.Errorf("nfe: DV requer 43 dígitos, recebido %d", len(base43))
	}
	soma := 0
	peso := 2
	for i := len(base43) - 1; i >= 0; i-- {
		d := base43[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("nfe: caractere não numérico na chave: %q", d)
		}
		soma += int(d-'0') * peso
		peso++
		if peso > 9 {
			peso = 2
		}
	}
	resto := soma % 11
	if resto < 2 {
		return 0, nil
	}
	return 11 - resto, nil
}

// Formatar agrupa a chave em blocos de 4 dígitos para exibição (DANFE).
func Formatar(chave string) string {
	var b strings.Builder
	for i, r := range chave {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func soDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
