package estoque

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovRepo struct {
	movs   []*entity.MovimentacaoEstoque
	failOn string
}

func (r *fakeMovRepo) Create(m *entity.MovimentacaoEstoque) error {
	if r.failOn == "Create" {
		return errors.New("falha simulada")
	}
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}
func (r *fakeMovRepo) List(limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	return r.movs, nil
}
func (r *fakeMovRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	var out []*entity.MovimentacaoEstoque
	for _, m := range r.movs {
		if m.ProdutoID == produtoID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
	// defasados, quando preenchido, é a visão servida por GetByID: um
	// snapshot antigo, como uma leitura sem trava enxergaria enquanto outra
	// transação grava. GetForUpdate sempre lê o estado corrente.
	defasados map[string]*entity.Produto
	failOn    string
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error { return nil }
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	if r.defasados != nil {
		if p, ok := r.defasados[id]; ok {
			cp := *p
			return &cp, nil
		}
	}
	p, ok := r.produtos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// congelarLeituraSemTrava fixa a visão de GetByID no estado atual, simulando
// o que uma checagem de saldo sem trava de linha enxergaria.
func (r *fakeProdutoRepo) congelarLeituraSemTrava() {
	r.defasados = map[string]*entity.Produto{}
	for k, v := range r.produtos {
		cp := *v
		r.defasados[k] = &cp
	}
}
func (r *fakeProdutoRepo) List(tipo string, limit, offset int) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *fakeProdutoRepo) Update(p *entity.Produto) error       { return nil }
func (r *fakeProdutoRepo) UpdateStatus(id, status string) error { return nil }
func (r *fakeProdutoRepo) IncrementarQuantidade(id string, delta decimal.Decimal) error {
	if r.failOn == "IncrementarQuantidade" {
		return errors.New("falha simulada")
	}
	p, ok := r.produtos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantidade = p.Quantidade.Add(delta)
	return nil
}

type fakeTxRunner struct {
	movRepo     *fakeMovRepo
	produtoRepo *fakeProdutoRepo
}

func (tx *fakeTxRunner) RunEstoque(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	snapMovs := make([]*entity.MovimentacaoEstoque, len(tx.movRepo.movs))
	copy(snapMovs, tx.movRepo.movs)
	snapProdutos := map[string]*entity.Produto{}
	for k, v := range tx.produtoRepo.produtos {
		cp := *v
		snapProdutos[k] = &cp
	}
	if err := fn(tx.movRepo, tx.produtoRepo); err != nil {
		tx.movRepo.movs = snapMovs
		tx.produtoRepo.produtos = snapProdutos
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const produtoID = "prod-1"

func buildUseCase(t *testing.T, saldo string) (*RegistrarMovimentacaoUseCase, *fakeMovRepo, *fakeProdutoRepo) {
	t.Helper()
	q, err := decimal.NewFromString(saldo)
	require.NoError(t, err)
	movRepo := &fakeMovRepo{}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		produtoID: {ID: produtoID, Nome: "Picanha", Quantidade: q},
	}}
	tx := &fakeTxRunner{movRepo: movRepo, produtoRepo: produtoRepo}
	return NewRegistrarMovimentacaoUseCase(tx, movRepo, produtoRepo), movRepo, produtoRepo
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Entrada soma ao saldo e registra a movimentação.
func TestRegistrar_Entrada(t *testing.T) {
	uc, movRepo, produtoRepo := buildUseCase(t, "10")

	resp, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimentacaoRequest{
		ProdutoID:  produtoID,
		Tipo:       entity.MovimentacaoEntrada,
		Quantidade: dec(t, "5.5"),
		Motivo:     "ajuste de inventário",
	})
	require.NoError(t, err)

	assert.True(t, dec(t, "15.5").Equal(produtoRepo.produtos[produtoID].Quantidade))
	require.Len(t, movRepo.movs, 1)
	assert.Equal(t, "user-1", resp.CreatedBy)
	assert.Equal(t, entity.MovimentacaoEntrada, resp.Tipo)
}

// Saída subtrai do saldo.
func TestRegistrar_Saida(t *testing.T) {
	uc, _, produtoRepo := buildUseCase(t, "10")

	_, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimentacaoRequest{
		ProdutoID:  produtoID,
		Tipo:       entity.MovimentacaoSaida,
		Quantidade: dec(t, "4"),
		Motivo:     "descarte por validade",
	})
	require.NoError(t, err)
	assert.True(t, dec(t, "6").Equal(produtoRepo.produtos[produtoID].Quantidade))
}

// Saída maior que o saldo é rejeitada sem tocar o estoque.
func TestRegistrar_SaidaInsuficiente(t *testing.T) {
	uc, movRepo, produtoRepo := buildUseCase(t, "3")

	_, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimentacaoRequest{
		ProdutoID:  produtoID,
		Tipo:       entity.MovimentacaoSaida,
		Quantidade: dec(t, "3.01"),
		Motivo:     "descarte",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, dec(t, "3").Equal(produtoRepo.produtos[produtoID].Quantidade))
	assert.Empty(t, movRepo.movs)
}

// Saída que zera o saldo é permitida (limite exato).
func TestRegistrar_SaidaZeraSaldo(t *testing.T) {
	uc, _, produtoRepo := buildUseCase(t, "3")

	_, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimentacaoRequest{
		ProdutoID:  produtoID,
		Tipo:       entity.MovimentacaoSaida,
		Quantidade: dec(t, "3"),
		Motivo:     "descarte total",
	})
	require.NoError(t, err)
	assert.True(t, produtoRepo.produtos[produtoID].Quantidade.IsZero())
}

// Duas saídas disputando o mesmo saldo: a checagem precisa ler com a linha
// travada, enxergando o débito da primeira. Se lesse a visão sem trava, ambas
// passariam e o saldo ficaria negativo.
func TestRegistrar_SaidasConcorrentesNaoNegativamSaldo(t *testing.T) {
	uc, _, produtoRepo := buildUseCase(t, "10")
	produtoRepo.congelarLeituraSemTrava()
	ctx := context.Background()
	req := dto.RegistrarMovimentacaoRequest{
		ProdutoID:  produtoID,
		Tipo:       entity.MovimentacaoSaida,
		Quantidade: dec(t, "10"),
		Motivo:     "descarte",
	}

	_, err := uc.Registrar(ctx, "user-1", req)
	require.NoError(t, err)
	_, err = uc.Registrar(ctx, "user-2", req)
	require.ErrorIs(t, err, domain.ErrInsufficientStock, "a segunda saída deve perder")

	assert.True(t, produtoRepo.produtos[produtoID].Quantidade.IsZero(),
		"saldo zera, nunca negativa")
}

// Atomicidade: falha no incremento reverte o registro da movimentação.
func TestRegistrar_FalhaRevertMovimentacao(t *testing.T) {
	uc, movRepo, produtoRepo := buildUseCase(t, "10")
	produtoRepo.failOn = "IncrementarQuantidade"

	_, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimentacaoRequest{
		ProdutoID:  produtoID,
		Tipo:       entity.MovimentacaoEntrada,
		Quantidade: dec(t, "5"),
		Motivo:     "ajuste",
	})
	require.Error(t, err)
	assert.Empty(t, movRepo.movs, "movimentação revertida junto")
}

// Entradas inválidas.
func TestRegistrar_Validacao(t *testing.T) {
	uc, _, _ := buildUseCase(t, "10")
	ctx := context.Background()

	casos := []dto.RegistrarMovimentacaoRequest{
		{Tipo: entity.MovimentacaoEntrada, Quantidade: dec(t, "1"), Motivo: "x"},             // sem produto
		{ProdutoID: produtoID, Tipo: "transferencia", Quantidade: dec(t, "1"), Motivo: "x"},  // tipo inválido
		{ProdutoID: produtoID, Tipo: entity.MovimentacaoEntrada, Motivo: "x"},                // quantidade zero
		{ProdutoID: produtoID, Tipo: entity.MovimentacaoEntrada, Quantidade: dec(t, "-1"), Motivo: "x"}, // negativa
		{ProdutoID: produtoID, Tipo: entity.MovimentacaoEntrada, Quantidade: dec(t, "1")},    // sem motivo
	}
	for i, c := range casos {
		_, err := uc.Registrar(ctx, "user-1", c)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}
