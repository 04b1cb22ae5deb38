package producao

import (
	"context"

	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// TxRunner executa o registro de produção em uma transação única: trava do
// abate, gravação da produção, incrementos de estoque, lotes e transição de
// status, tudo ou nada.
type TxRunner interface {
	RunProducao(ctx context.Context, fn func(
		abateRepo repository.AbateRepository,
		producaoRepo repository.ProducaoRepository,
		produtoRepo repository.ProdutoRepository,
		metaRepo repository.MetaRepository,
		loteRepo repository.LoteRepository,
	) error) error
}
