// Package abate concentra as funções puras de custeio do lote de abate, para
// que CustoTotal nunca seja recalculado ad hoc nas camadas de leitura.
package abate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/domain"
)

// CustoTotal deriva o custo total do lote: numeroAnimais × custoPorAnimal.
func CustoTotal(numeroAnimais int, custoPorAnimal decimal.Decimal) decimal.Decimal {
	return custoPorAnimal.Mul(decimal.NewFromInt(int64(numeroAnimais)))
}

// NovoLoteID deriva o código do lote a partir do instante de registro.
func NovoLoteID(t time.Time) string {
	return fmt.Sprintf("LOTE-%d", t.Unix())
}

// Validar aplica as invariantes de criação/edição do abate:
// numeroAnimais > 0, custoPorAnimal >= 0, 0 <= condenado <= numeroAnimais.
func Validar(numeroAnimais, condenado int, custoPorAnimal decimal.Decimal) error {
	if numeroAnimais <= 0 {
		return fmt.Errorf("%w: número de animais deve ser maior que zero", domain.ErrInvalidInput)
	}
	if condenado < 0 {
		return fmt.Errorf("%w: condenado não pode ser negativo", domain.ErrInvalidInput)
	}
	if condenado > numeroAnimais {
		return fmt.Errorf("%w: condenado (%d) excede o número de animais (%d)", domain.ErrInvalidInput, condenado, numeroAnimais)
	}
	if custoPorAnimal.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: custo por animal não pode ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
