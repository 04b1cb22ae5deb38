package abate

import (
	"context"

	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que abate e conta a pagar sejam
// gravados juntos ou nenhum dos dois.
type TxRunner interface {
	RunAbate(ctx context.Context, fn func(
		abateRepo repository.AbateRepository,
		contaRepo repository.ContaPagarRepository,
	) error) error
}
