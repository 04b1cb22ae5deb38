package estoque

import (
	"context"

	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// TxRunner executa o lançamento manual em uma transação: registro da
// movimentação e ajuste do saldo do produto juntos.
type TxRunner interface {
	RunEstoque(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
