package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appabate "github.com/frigosul/frigosul-api/internal/application/abate"
	appestoque "github.com/frigosul/frigosul-api/internal/application/estoque"
	appproducao "github.com/frigosul/frigosul-api/internal/application/producao"
	appvendas "github.com/frigosul/frigosul-api/internal/application/vendas"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

var (
	_ appabate.TxRunner    = (*TxRunner)(nil)
	_ appproducao.TxRunner = (*TxRunner)(nil)
	_ appestoque.TxRunner  = (*TxRunner)(nil)
	_ appvendas.TxRunner   = (*TxRunner)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, passando
// repositórios atados à tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAbate transação de criação de abate (abate + conta a pagar).
func (r *TxRunner) RunAbate(ctx context.Context, fn func(
	abateRepo repository.AbateRepository,
	contaRepo repository.ContaPagarRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAbateRepository(tx), NewContaPagarRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProducao transação de registro de produção (trava do abate, produção,
// leitura de metas, incrementos de estoque, lotes e status).
func (r *TxRunner) RunProducao(ctx context.Context, fn func(
	abateRepo repository.AbateRepository,
	producaoRepo repository.ProducaoRepository,
	produtoRepo repository.ProdutoRepository,
	metaRepo repository.MetaRepository,
	loteRepo repository.LoteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAbateRepository(tx), NewProducaoRepository(tx), NewProdutoRepository(tx), NewMetaRepository(tx), NewLoteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunEstoque transação de movimentação manual (registro + ajuste de saldo).
func (r *TxRunner) RunEstoque(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimentacaoRepository(tx), NewProdutoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenda transação de venda (cabeçalho + itens + baixa de estoque).
func (r *TxRunner) RunVenda(ctx context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVendaRepository(tx), NewProdutoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
