package vendas

import (
	"context"

	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// TxRunner executa a venda em uma transação: gravação do cabeçalho + itens e
// baixa de estoque de cada produto, tudo ou nada.
type TxRunner interface {
	RunVenda(ctx context.Context, fn func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
