package metas

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeMetaRepo struct {
	metas map[string]*entity.Meta // por ID
}

func (r *fakeMetaRepo) Create(m *entity.Meta) error {
	cp := *m
	r.metas[m.ID] = &cp
	return nil
}
func (r *fakeMetaRepo) GetByID(id string) (*entity.Meta, error) {
	m, ok := r.metas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}
func (r *fakeMetaRepo) GetAtivaPorProduto(produtoID string) (*entity.Meta, error) {
	for _, m := range r.metas {
		if m.ProdutoID == produtoID && m.Status == entity.StatusAtivo {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeMetaRepo) ListAtivas() ([]*entity.Meta, error) {
	var out []*entity.Meta
	for _, m := range r.metas {
		if m.Status == entity.StatusAtivo {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMetaRepo) Update(m *entity.Meta) error {
	cp := *m
	r.metas[m.ID] = &cp
	return nil
}
func (r *fakeMetaRepo) UpdateStatus(id, status string) error {
	m, ok := r.metas[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = status
	return nil
}

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error { return nil }
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (r *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) { return r.GetByID(id) }
func (r *fakeProdutoRepo) List(tipo string, limit, offset int) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *fakeProdutoRepo) Update(p *entity.Produto) error                               { return nil }
func (r *fakeProdutoRepo) UpdateStatus(id, status string) error                         { return nil }
func (r *fakeProdutoRepo) IncrementarQuantidade(id string, delta decimal.Decimal) error { return nil }

type fakeAbateRepo struct {
	abates map[string]*entity.Abate
}

func (r *fakeAbateRepo) Create(a *entity.Abate) error { return nil }
func (r *fakeAbateRepo) GetByID(id string) (*entity.Abate, error) {
	a, ok := r.abates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
func (r *fakeAbateRepo) GetForUpdate(id string) (*entity.Abate, error) { return r.GetByID(id) }
func (r *fakeAbateRepo) List(status string, limit, offset int) ([]*entity.Abate, error) {
	return nil, nil
}
func (r *fakeAbateRepo) Update(a *entity.Abate) error         { return nil }
func (r *fakeAbateRepo) UpdateStatus(id, status string) error { return nil }

type fakeProducaoRepo struct {
	producoes []*entity.Producao
}

func (r *fakeProducaoRepo) Create(p *entity.Producao) error { return nil }
func (r *fakeProducaoRepo) GetByID(id string) (*entity.Producao, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeProducaoRepo) List(limit, offset int) ([]*entity.Producao, error) { return nil, nil }
func (r *fakeProducaoRepo) ListByAbate(abateID string) ([]*entity.Producao, error) {
	var out []*entity.Producao
	for _, p := range r.producoes {
		if p.AbateID == abateID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProducaoRepo) UpdateCabecalho(id string, data time.Time, responsavelID string) error {
	return nil
}
func (r *fakeProducaoRepo) UpdateStatus(id, status string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	produtoPic = "prod-picanha"
	abateID    = "abate-1"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func novoProduto(t *testing.T) *entity.Produto {
	t.Helper()
	return &entity.Produto{
		ID: produtoPic, Nome: "Picanha", TipoProduto: entity.ProdutoVenda,
		PrecoVenda: dec(t, "12.5"), CustoUnitario: dec(t, "7"), UnidadeSigla: "KG",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MetaUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Criar meta para produto válido; segunda meta ativa para o mesmo produto
// falha com ErrDuplicate.
func TestMeta_UnicaAtivaPorProduto(t *testing.T) {
	metaRepo := &fakeMetaRepo{metas: map[string]*entity.Meta{}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{produtoPic: novoProduto(t)}}
	uc := NewMetaUseCase(metaRepo, produtoRepo)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreateMetaRequest{ProdutoID: produtoPic, MetaPorAnimal: dec(t, "0.6")})
	require.NoError(t, err)
	assert.Equal(t, "KG", resp.Unidade)
	assert.Equal(t, entity.StatusAtivo, resp.Status)

	_, err = uc.Create(ctx, dto.CreateMetaRequest{ProdutoID: produtoPic, MetaPorAnimal: dec(t, "0.7")})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// Inativada, uma nova pode nascer.
	require.NoError(t, uc.Inativar(ctx, resp.ID))
	_, err = uc.Create(ctx, dto.CreateMetaRequest{ProdutoID: produtoPic, MetaPorAnimal: dec(t, "0.7")})
	require.NoError(t, err)

	// Reativar a antiga agora conflita com a nova.
	require.ErrorIs(t, uc.Reativar(ctx, resp.ID), domain.ErrDuplicate)
}

// Produto de uso interno não aceita meta; meta não positiva é rejeitada.
func TestMeta_Validacao(t *testing.T) {
	interno := &entity.Produto{ID: "prod-int", Nome: "Sabão", TipoProduto: entity.ProdutoUsoInterno}
	metaRepo := &fakeMetaRepo{metas: map[string]*entity.Meta{}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		produtoPic: novoProduto(t), "prod-int": interno,
	}}
	uc := NewMetaUseCase(metaRepo, produtoRepo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMetaRequest{ProdutoID: "prod-int", MetaPorAnimal: dec(t, "1")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateMetaRequest{ProdutoID: produtoPic, MetaPorAnimal: decimal.Zero})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateMetaRequest{ProdutoID: "inexistente", MetaPorAnimal: dec(t, "1")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RendimentoUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Cenário de referência: 100 animais com 10 condenados e meta 0.6/animal dá
// meta teórica 54; duas produções somando 50 KG deixam perda 4. Com preço de
// venda 12.50 e custo 7.00: realizado 625, perda 28, eficiência 625/653.
func TestRendimento_PorAbate(t *testing.T) {
	abateRepo := &fakeAbateRepo{abates: map[string]*entity.Abate{
		abateID: {ID: abateID, LoteID: "LOTE-1", NumeroAnimais: 100, Condenado: 10},
	}}
	metaRepo := &fakeMetaRepo{metas: map[string]*entity.Meta{
		"meta-1": {ID: "meta-1", ProdutoID: produtoPic, ProdutoNome: "Picanha",
			MetaPorAnimal: dec(t, "0.6"), Unidade: "KG", Status: entity.StatusAtivo},
	}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{produtoPic: novoProduto(t)}}
	producaoRepo := &fakeProducaoRepo{producoes: []*entity.Producao{
		{ID: "p1", AbateID: abateID, Status: entity.ProducaoAtiva, Itens: []entity.ItemProducao{
			{ProdutoID: produtoPic, Quantidade: dec(t, "30"), Perda: dec(t, "24")},
		}},
		{ID: "p2", AbateID: abateID, Status: entity.ProducaoAtiva, Itens: []entity.ItemProducao{
			{ProdutoID: produtoPic, Quantidade: dec(t, "20"), Perda: dec(t, "4")},
		}},
		// Produção inativa fica fora da agregação.
		{ID: "p3", AbateID: abateID, Status: entity.ProducaoInativa, Itens: []entity.ItemProducao{
			{ProdutoID: produtoPic, Quantidade: dec(t, "999"), Perda: decimal.Zero},
		}},
	}}
	uc := NewRendimentoUseCase(abateRepo, producaoRepo, metaRepo, produtoRepo)

	out, err := uc.PorAbate(context.Background(), abateID)
	require.NoError(t, err)

	assert.Equal(t, 90, out.AnimaisValidos)
	require.Len(t, out.Produtos, 1)
	p := out.Produtos[0]
	assert.True(t, dec(t, "54").Equal(p.MetaTeorica), "(100-10) × 0.6")
	assert.True(t, dec(t, "50").Equal(p.TotalProduzido), "30 + 20, inativa excluída")
	assert.True(t, dec(t, "28").Equal(p.PerdaRegistrada), "24 + 4")
	assert.True(t, p.ProgressoPercentual.GreaterThan(dec(t, "92.5")))
	assert.True(t, p.ProgressoPercentual.LessThan(dec(t, "92.7")))
	assert.True(t, dec(t, "625").Equal(p.ValorRealizado), "50 × 12.50")
	assert.True(t, dec(t, "196").Equal(p.ValorPerda), "28 × 7.00")

	// eficiência = 625 / (625 + 196) × 100
	esperada := dec(t, "625").Div(dec(t, "821")).Mul(dec(t, "100"))
	assert.True(t, esperada.Equal(out.Eficiencia))
}

// Abate com todos os animais condenados zera as metas teóricas e exclui os
// produtos da agregação; eficiência cai no caso denominador zero (100%).
func TestRendimento_TodosCondenados(t *testing.T) {
	abateRepo := &fakeAbateRepo{abates: map[string]*entity.Abate{
		abateID: {ID: abateID, LoteID: "LOTE-1", NumeroAnimais: 10, Condenado: 10},
	}}
	metaRepo := &fakeMetaRepo{metas: map[string]*entity.Meta{
		"meta-1": {ID: "meta-1", ProdutoID: produtoPic, MetaPorAnimal: dec(t, "0.6"),
			Status: entity.StatusAtivo},
	}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{produtoPic: novoProduto(t)}}
	uc := NewRendimentoUseCase(abateRepo, &fakeProducaoRepo{}, metaRepo, produtoRepo)

	out, err := uc.PorAbate(context.Background(), abateID)
	require.NoError(t, err)
	assert.Empty(t, out.Produtos)
	assert.True(t, dec(t, "100").Equal(out.Eficiencia))
}
