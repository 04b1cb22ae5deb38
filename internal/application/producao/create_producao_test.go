package producao

import (
	"context"
	"errors"
	"testing"
	"time"

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

type fakeAbateRepo struct {
	abates map[string]*entity.Abate
}

func (r *fakeAbateRepo) Create(a *entity.Abate) error { return nil }
func (r *fakeAbateRepo) GetByID(id string) (*entity.Abate, error) {
	a, ok := r.abates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}
func (r *fakeAbateRepo) GetForUpdate(id string) (*entity.Abate, error) { return r.GetByID(id) }
func (r *fakeAbateRepo) List(status string, limit, offset int) ([]*entity.Abate, error) {
	return nil, nil
}
func (r *fakeAbateRepo) Update(a *entity.Abate) error { return nil }
func (r *fakeAbateRepo) UpdateStatus(id, status string) error {
	a, ok := r.abates[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	return nil
}

type fakeProducaoRepo struct {
	producoes map[string]*entity.Producao
	failOn    string
}

func (r *fakeProducaoRepo) Create(p *entity.Producao) error {
	if r.failOn == "Create" {
		return errors.New("falha simulada")
	}
	cp := *p
	r.producoes[p.ID] = &cp
	return nil
}
func (r *fakeProducaoRepo) GetByID(id string) (*entity.Producao, error) {
	p, ok := r.producoes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProducaoRepo) List(limit, offset int) ([]*entity.Producao, error) { return nil, nil }
func (r *fakeProducaoRepo) ListByAbate(abateID string) ([]*entity.Producao, error) {
	var out []*entity.Producao
	for _, p := range r.producoes {
		if p.AbateID == abateID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeProducaoRepo) UpdateCabecalho(id string, data time.Time, responsavelID string) error {
	p, ok := r.producoes[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Data = data
	p.ResponsavelID = responsavelID
	return nil
}
func (r *fakeProducaoRepo) UpdateStatus(id, status string) error {
	p, ok := r.producoes[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
	failOn   string
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error { return nil }
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) { return r.GetByID(id) }
func (r *fakeProdutoRepo) List(tipo string, limit, offset int) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *fakeProdutoRepo) Update(p *entity.Produto) error            { return nil }
func (r *fakeProdutoRepo) UpdateStatus(id, status string) error      { return nil }
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

type fakeMetaRepo struct {
	metas map[string]*entity.Meta // por produtoID
}

func (r *fakeMetaRepo) Create(m *entity.Meta) error            { return nil }
func (r *fakeMetaRepo) GetByID(id string) (*entity.Meta, error) { return nil, domain.ErrNotFound }
func (r *fakeMetaRepo) GetAtivaPorProduto(produtoID string) (*entity.Meta, error) {
	m, ok := r.metas[produtoID]
	if !ok {
		return nil, nil
	}
	return m, nil
}
func (r *fakeMetaRepo) ListAtivas() ([]*entity.Meta, error) {
	var out []*entity.Meta
	for _, m := range r.metas {
		out = append(out, m)
	}
	return out, nil
}
func (r *fakeMetaRepo) Update(m *entity.Meta) error        { return nil }
func (r *fakeMetaRepo) UpdateStatus(id, status string) error { return nil }

type fakeLoteRepo struct {
	lotes []*entity.LoteGerado
}

func (r *fakeLoteRepo) Create(l *entity.LoteGerado) error {
	cp := *l
	r.lotes = append(r.lotes, &cp)
	return nil
}
func (r *fakeLoteRepo) ListByProduto(produtoID string) ([]*entity.LoteGerado, error) {
	return nil, nil
}
func (r *fakeLoteRepo) ListByProducao(producaoID string) ([]*entity.LoteGerado, error) {
	var out []*entity.LoteGerado
	for _, l := range r.lotes {
		if l.ProducaoID == producaoID {
			out = append(out, l)
		}
	}
	return out, nil
}

// fakeTxRunner imita o rollback: snapshot antes, restaura em erro.
type fakeTxRunner struct {
	abateRepo    *fakeAbateRepo
	producaoRepo *fakeProducaoRepo
	produtoRepo  *fakeProdutoRepo
	metaRepo     *fakeMetaRepo
	loteRepo     *fakeLoteRepo
}

func (tx *fakeTxRunner) RunProducao(ctx context.Context, fn func(
	abateRepo repository.AbateRepository,
	producaoRepo repository.ProducaoRepository,
	produtoRepo repository.ProdutoRepository,
	metaRepo repository.MetaRepository,
	loteRepo repository.LoteRepository,
) error) error {
	snapAbates := map[string]*entity.Abate{}
	for k, v := range tx.abateRepo.abates {
		cp := *v
		snapAbates[k] = &cp
	}
	snapProducoes := map[string]*entity.Producao{}
	for k, v := range tx.producaoRepo.producoes {
		cp := *v
		snapProducoes[k] = &cp
	}
	snapProdutos := map[string]*entity.Produto{}
	for k, v := range tx.produtoRepo.produtos {
		cp := *v
		snapProdutos[k] = &cp
	}
	snapLotes := make([]*entity.LoteGerado, len(tx.loteRepo.lotes))
	copy(snapLotes, tx.loteRepo.lotes)

	if err := fn(tx.abateRepo, tx.producaoRepo, tx.produtoRepo, tx.metaRepo, tx.loteRepo); err != nil {
		tx.abateRepo.abates = snapAbates
		tx.producaoRepo.producoes = snapProducoes
		tx.produtoRepo.produtos = snapProdutos
		tx.loteRepo.lotes = snapLotes
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	abateID     = "abate-1"
	produtoPic  = "prod-picanha0"
	produtoCos  = "prod-costela0"
)

type fixture struct {
	uc           *CreateProducaoUseCase
	abateRepo    *fakeAbateRepo
	producaoRepo *fakeProducaoRepo
	produtoRepo  *fakeProdutoRepo
	metaRepo     *fakeMetaRepo
	loteRepo     *fakeLoteRepo
}

// buildFixture monta um abate de 100 animais (10 condenados) com dois
// produtos, um deles com meta 0.6/animal e controle de lote.
func buildFixture(t *testing.T) *fixture {
	t.Helper()
	abateRepo := &fakeAbateRepo{abates: map[string]*entity.Abate{
		abateID: {
			ID:            abateID,
			LoteID:        "LOTE-1700000000",
			NumeroAnimais: 100,
			Condenado:     10,
			Status:        entity.AbateAguardandoProcessamento,
		},
	}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		produtoPic: {
			ID: produtoPic, Nome: "Picanha", TipoProduto: entity.ProdutoVenda,
			Quantidade: dec(t, "10"), UnidadeSigla: "KG",
			ControlaLote: true, DiasValidade: 30,
		},
		produtoCos: {
			ID: produtoCos, Nome: "Costela", TipoProduto: entity.ProdutoVenda,
			Quantidade: decimal.Zero, UnidadeSigla: "KG",
		},
	}}
	metaRepo := &fakeMetaRepo{metas: map[string]*entity.Meta{
		produtoPic: {ID: "meta-1", ProdutoID: produtoPic, ProdutoNome: "Picanha",
			MetaPorAnimal: dec(t, "0.6"), Unidade: "KG", Status: entity.StatusAtivo},
	}}
	producaoRepo := &fakeProducaoRepo{producoes: map[string]*entity.Producao{}}
	loteRepo := &fakeLoteRepo{}
	tx := &fakeTxRunner{
		abateRepo:    abateRepo,
		producaoRepo: producaoRepo,
		produtoRepo:  produtoRepo,
		metaRepo:     metaRepo,
		loteRepo:     loteRepo,
	}
	uc := NewCreateProducaoUseCase(tx, producaoRepo, produtoRepo, loteRepo)
	return &fixture{uc: uc, abateRepo: abateRepo, producaoRepo: producaoRepo,
		produtoRepo: produtoRepo, metaRepo: metaRepo, loteRepo: loteRepo}
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

// Fluxo completo: perda derivada da meta, estoque incrementado, lote gerado e
// abate movido para em_processamento, tudo na mesma transação.
func TestCreate_FluxoCompleto(t *testing.T) {
	f := buildFixture(t)
	dataProducao := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	resp, err := f.uc.Create(context.Background(), "user-1", dto.CreateProducaoRequest{
		AbateID:       abateID,
		ResponsavelID: "func-1",
		Data:          dataProducao,
		Itens: []dto.ItemProducaoRequest{
			{ProdutoID: produtoPic, Quantidade: dec(t, "50")},
			{ProdutoID: produtoCos, Quantidade: dec(t, "80")},
		},
	})
	require.NoError(t, err)

	// Perda da picanha: metaTeorica = (100-10) × 0.6 = 54; perda = 54 - 50 = 4.
	require.Len(t, resp.Itens, 2)
	assert.True(t, dec(t, "4").Equal(resp.Itens[0].Perda), "perda = 54 - 50")
	// Costela sem meta: perda zero por definição.
	assert.True(t, resp.Itens[1].Perda.IsZero())

	// Estoque incrementado atomicamente.
	assert.True(t, dec(t, "60").Equal(f.produtoRepo.produtos[produtoPic].Quantidade), "10 + 50")
	assert.True(t, dec(t, "80").Equal(f.produtoRepo.produtos[produtoCos].Quantidade))

	// Lote gerado só para o produto com controle de lote, validade = data + 30d.
	require.Len(t, f.loteRepo.lotes, 1)
	lote := f.loteRepo.lotes[0]
	assert.Equal(t, produtoPic, lote.ProdutoID)
	assert.True(t, dec(t, "50").Equal(lote.QuantidadeInicial))
	assert.Equal(t, dataProducao.AddDate(0, 0, 30), lote.DataValidade)

	// Abate em processamento e lote herdado no cabeçalho.
	assert.Equal(t, entity.AbateEmProcessamento, f.abateRepo.abates[abateID].Status)
	assert.Equal(t, "LOTE-1700000000", resp.Lote)
}

// Segunda produção sobre o mesmo abate continua permitida (em_processamento
// ainda aceita processamento).
func TestCreate_SegundaProducaoMesmoAbate(t *testing.T) {
	f := buildFixture(t)
	ctx := context.Background()
	req := dto.CreateProducaoRequest{
		AbateID: abateID,
		Itens:   []dto.ItemProducaoRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "30")}},
	}

	_, err := f.uc.Create(ctx, "user-1", req)
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, "user-1", req)
	require.NoError(t, err)

	assert.Len(t, f.producaoRepo.producoes, 2)
	assert.True(t, dec(t, "70").Equal(f.produtoRepo.produtos[produtoPic].Quantidade), "10 + 30 + 30")
}

// Abate finalizado ou cancelado não aceita produção.
func TestCreate_AbateNaoProcessavel(t *testing.T) {
	for _, status := range []string{entity.AbateFinalizado, entity.AbateCancelado} {
		f := buildFixture(t)
		f.abateRepo.abates[abateID].Status = status

		_, err := f.uc.Create(context.Background(), "user-1", dto.CreateProducaoRequest{
			AbateID: abateID,
			Itens:   []dto.ItemProducaoRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "10")}},
		})
		require.ErrorIs(t, err, domain.ErrInvalidState, "status %s", status)
		assert.Empty(t, f.producaoRepo.producoes)
		assert.True(t, dec(t, "10").Equal(f.produtoRepo.produtos[produtoPic].Quantidade),
			"estoque intocado em %s", status)
	}
}

// Atomicidade: falha ao gravar a produção reverte incrementos de estoque,
// lotes e o status do abate.
func TestCreate_FalhaRevertTudo(t *testing.T) {
	f := buildFixture(t)
	f.producaoRepo.failOn = "Create"

	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateProducaoRequest{
		AbateID: abateID,
		Itens: []dto.ItemProducaoRequest{
			{ProdutoID: produtoPic, Quantidade: dec(t, "50")},
		},
	})
	require.Error(t, err)

	assert.True(t, dec(t, "10").Equal(f.produtoRepo.produtos[produtoPic].Quantidade),
		"incremento revertido")
	assert.Empty(t, f.loteRepo.lotes, "lote revertido")
	assert.Equal(t, entity.AbateAguardandoProcessamento, f.abateRepo.abates[abateID].Status)
	assert.Empty(t, f.producaoRepo.producoes)
}

// Item com quantidade zero entra na produção (registra a perda integral) mas
// não incrementa estoque nem gera lote.
func TestCreate_QuantidadeZeroNaoIncrementa(t *testing.T) {
	f := buildFixture(t)

	resp, err := f.uc.Create(context.Background(), "user-1", dto.CreateProducaoRequest{
		AbateID: abateID,
		Itens:   []dto.ItemProducaoRequest{{ProdutoID: produtoPic, Quantidade: decimal.Zero}},
	})
	require.NoError(t, err)

	assert.True(t, dec(t, "54").Equal(resp.Itens[0].Perda), "perda integral = metaTeorica")
	assert.True(t, dec(t, "10").Equal(f.produtoRepo.produtos[produtoPic].Quantidade))
	assert.Empty(t, f.loteRepo.lotes)
}

// Entradas inválidas rejeitadas antes da transação.
func TestCreate_Validacao(t *testing.T) {
	f := buildFixture(t)
	ctx := context.Background()

	casos := []struct {
		nome string
		req  dto.CreateProducaoRequest
	}{
		{"sem abate", dto.CreateProducaoRequest{
			Itens: []dto.ItemProducaoRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "1")}}}},
		{"sem itens", dto.CreateProducaoRequest{AbateID: abateID}},
		{"quantidade negativa", dto.CreateProducaoRequest{
			AbateID: abateID,
			Itens:   []dto.ItemProducaoRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "-1")}}}},
		{"item sem produto", dto.CreateProducaoRequest{
			AbateID: abateID,
			Itens:   []dto.ItemProducaoRequest{{Quantidade: dec(t, "1")}}}},
	}
	for _, c := range casos {
		_, err := f.uc.Create(ctx, "user-1", c.req)
		require.ErrorIs(t, err, domain.ErrInvalidInput, c.nome)
	}
	assert.Empty(t, f.producaoRepo.producoes)
}

// UpdateCabecalho muda só data e responsável; itens ficam como estavam.
func TestUpdateCabecalho(t *testing.T) {
	f := buildFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Create(ctx, "user-1", dto.CreateProducaoRequest{
		AbateID:       abateID,
		ResponsavelID: "func-1",
		Itens:         []dto.ItemProducaoRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "50")}},
	})
	require.NoError(t, err)

	novaData := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.uc.UpdateCabecalho(ctx, resp.ID, dto.UpdateProducaoRequest{
		Data:          novaData,
		ResponsavelID: "func-2",
	}))

	p := f.producaoRepo.producoes[resp.ID]
	assert.Equal(t, novaData, p.Data)
	assert.Equal(t, "func-2", p.ResponsavelID)
	require.Len(t, p.Itens, 1)
	assert.True(t, dec(t, "50").Equal(p.Itens[0].Quantidade), "itens imutáveis")
}
