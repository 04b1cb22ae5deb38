// Package producao concentra as funções puras de rendimento: meta teórica,
// perda, progresso e eficiência de lote. São funções de leitura sem efeitos
// colaterais, recalculadas a cada chamada sobre o estado corrente.
package producao

import (
	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// MetaTeorica quantidade esperada para um produto em um abate:
// (numeroAnimais - condenado) × metaPorAnimal.
func MetaTeorica(numeroAnimais, condenado int, metaPorAnimal decimal.Decimal) decimal.Decimal {
	validos := numeroAnimais - condenado
	if validos < 0 {
		validos = 0
	}
	return metaPorAnimal.Mul(decimal.NewFromInt(int64(validos)))
}

// Perda déficit entre a meta teórica e a quantidade produzida, nunca negativa.
// Produto sem meta configurada tem perda zero por definição.
func Perda(metaTeorica, quantidade decimal.Decimal) decimal.Decimal {
	p := metaTeorica.Sub(quantidade)
	if p.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return p
}

// ProgressoPercentual percentual produzido sobre a meta teórica, limitado a
// 100. Meta teórica zero resulta em 0 (produto excluído da agregação).
func ProgressoPercentual(totalProduzido, metaTeorica decimal.Decimal) decimal.Decimal {
	if !metaTeorica.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	p := totalProduzido.Div(metaTeorica).Mul(cem)
	if p.GreaterThan(cem) {
		return cem
	}
	return p
}

// ValorRealizado valor do que foi produzido ao preço de referência
// (precoVenda quando existir, senão custoUnitario).
func ValorRealizado(totalProduzido, valorReferencia decimal.Decimal) decimal.Decimal {
	return totalProduzido.Mul(valorReferencia)
}

// ValorPerda valor da perda registrada ao custo unitário do produto.
func ValorPerda(perdaRegistrada, custoUnitario decimal.Decimal) decimal.Decimal {
	return perdaRegistrada.Mul(custoUnitario)
}

// Eficiencia percentual do valor realizado sobre realizado + perda.
// Denominador zero define eficiência 100%.
func Eficiencia(valorRealizado, valorPerda decimal.Decimal) decimal.Decimal {
	total := valorRealizado.Add(valorPerda)
	if !total.GreaterThan(decimal.Zero) {
		return cem
	}
	return valorRealizado.Div(total).Mul(cem)
}
