package vendas

import (
	"context"
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

type fakeVendaRepo struct {
	vendas  map[string]*entity.Venda
	proximo int64
	// defasadas, quando preenchido, é a visão servida por GetByID: um
	// snapshot antigo, como uma leitura fora da transação enxergaria.
	// GetForUpdate sempre lê o estado corrente.
	defasadas map[string]*entity.Venda
}

func (r *fakeVendaRepo) Create(v *entity.Venda) error {
	cp := *v
	r.vendas[v.ID] = &cp
	return nil
}
func (r *fakeVendaRepo) GetByID(id string) (*entity.Venda, error) {
	if r.defasadas != nil {
		if v, ok := r.defasadas[id]; ok {
			cp := *v
			return &cp, nil
		}
	}
	v, ok := r.vendas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}
func (r *fakeVendaRepo) GetForUpdate(id string) (*entity.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

// congelarLeituraSemTrava fixa a visão de GetByID no estado atual.
func (r *fakeVendaRepo) congelarLeituraSemTrava() {
	r.defasadas = map[string]*entity.Venda{}
	for k, v := range r.vendas {
		cp := *v
		r.defasadas[k] = &cp
	}
}
func (r *fakeVendaRepo) List(limit, offset int) ([]*entity.Venda, error) { return nil, nil }
func (r *fakeVendaRepo) ProximoNumero() (int64, error) {
	r.proximo++
	return r.proximo, nil
}
func (r *fakeVendaRepo) UpdateNFe(v *entity.Venda) error {
	cp := *v
	r.vendas[v.ID] = &cp
	return nil
}
func (r *fakeVendaRepo) UpdateStatus(id, status string) error {
	v, ok := r.vendas[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Status = status
	return nil
}

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error { return nil }
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (r *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Update(c *entity.Cliente) error                    { return nil }
func (r *fakeClienteRepo) UpdateStatus(id, status string) error              { return nil }

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
	// defasados, quando preenchido, é a visão servida por GetByID: um
	// snapshot antigo, como uma leitura sem trava enxergaria. GetForUpdate
	// sempre lê o estado corrente.
	defasados map[string]*entity.Produto
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

// congelarLeituraSemTrava fixa a visão de GetByID no estado atual.
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
	p, ok := r.produtos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantidade = p.Quantidade.Add(delta)
	return nil
}

type fakeTxRunner struct {
	vendaRepo   *fakeVendaRepo
	produtoRepo *fakeProdutoRepo
}

func (tx *fakeTxRunner) RunVenda(ctx context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	snapVendas := map[string]*entity.Venda{}
	for k, v := range tx.vendaRepo.vendas {
		cp := *v
		snapVendas[k] = &cp
	}
	snapProdutos := map[string]*entity.Produto{}
	for k, v := range tx.produtoRepo.produtos {
		cp := *v
		snapProdutos[k] = &cp
	}
	if err := fn(tx.vendaRepo, tx.produtoRepo); err != nil {
		tx.vendaRepo.vendas = snapVendas
		tx.produtoRepo.produtos = snapProdutos
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	clienteID  = "cli-1"
	produtoPic = "prod-picanha"
	produtoInt = "prod-interno"
)

func buildUseCase(t *testing.T) (*CreateVendaUseCase, *fakeVendaRepo, *fakeProdutoRepo) {
	t.Helper()
	vendaRepo := &fakeVendaRepo{vendas: map[string]*entity.Venda{}}
	clienteRepo := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		clienteID: {ID: clienteID, Nome: "Mercado Central", Status: entity.StatusAtivo},
	}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		produtoPic: {ID: produtoPic, Nome: "Picanha", TipoProduto: entity.ProdutoVenda,
			Quantidade: dec(t, "20"), PrecoVenda: dec(t, "59.90"), UnidadeSigla: "KG"},
		produtoInt: {ID: produtoInt, Nome: "Sabão", TipoProduto: entity.ProdutoUsoInterno,
			Quantidade: dec(t, "5")},
	}}
	tx := &fakeTxRunner{vendaRepo: vendaRepo, produtoRepo: produtoRepo}
	return NewCreateVendaUseCase(tx, vendaRepo, clienteRepo, produtoRepo), vendaRepo, produtoRepo
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

// Venda baixa o estoque, usa o preço do catálogo quando não informado e recebe
// número sequencial.
func TestCreate_BaixaEstoqueEUsaPrecoCatalogo(t *testing.T) {
	uc, vendaRepo, produtoRepo := buildUseCase(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "2")}},
	})
	require.NoError(t, err)

	assert.True(t, dec(t, "119.80").Equal(resp.ValorFinal), "2 × 59.90")
	assert.True(t, dec(t, "18").Equal(produtoRepo.produtos[produtoPic].Quantidade))
	assert.Equal(t, int64(1), resp.Numero)
	assert.Equal(t, entity.VendaSemNota, resp.Status)
	assert.Equal(t, "Mercado Central", resp.ClienteNome)
	assert.Len(t, vendaRepo.vendas, 1)
}

// Preço informado na linha tem precedência sobre o catálogo.
func TestCreate_PrecoInformado(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoPic, Quantidade: dec(t, "3"), PrecoUnitario: dec(t, "50")},
		},
	})
	require.NoError(t, err)
	assert.True(t, dec(t, "150").Equal(resp.ValorFinal))
}

// Estoque insuficiente em qualquer item aborta a venda inteira, inclusive as
// baixas já aplicadas nos itens anteriores.
func TestCreate_EstoqueInsuficienteRevertTudo(t *testing.T) {
	uc, vendaRepo, produtoRepo := buildUseCase(t)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoPic, Quantidade: dec(t, "5")},
			{ProdutoID: produtoPic, Quantidade: dec(t, "100")},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, dec(t, "20").Equal(produtoRepo.produtos[produtoPic].Quantidade),
		"baixa do primeiro item revertida")
	assert.Empty(t, vendaRepo.vendas)
}

// Produto de uso interno não é vendável.
func TestCreate_ProdutoNaoVendavel(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: produtoInt, Quantidade: dec(t, "1")}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Números sequenciais crescem venda a venda.
func TestCreate_NumeroSequencial(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	ctx := context.Background()
	req := dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "1")}},
	}

	r1, err := uc.Create(ctx, "user-1", req)
	require.NoError(t, err)
	r2, err := uc.Create(ctx, "user-1", req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), r1.Numero)
	assert.Equal(t, int64(2), r2.Numero)
}

// Duas vendas disputando o mesmo saldo: a checagem de estoque precisa ler com
// a linha travada, enxergando a baixa da primeira. Se lesse a visão sem trava,
// ambas passariam e o saldo ficaria negativo.
func TestCreate_VendasConcorrentesNaoNegativamSaldo(t *testing.T) {
	uc, _, produtoRepo := buildUseCase(t)
	produtoRepo.congelarLeituraSemTrava()
	ctx := context.Background()
	req := dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "20")}},
	}

	_, err := uc.Create(ctx, "user-1", req)
	require.NoError(t, err)
	_, err = uc.Create(ctx, "user-2", req)
	require.ErrorIs(t, err, domain.ErrInsufficientStock, "a segunda venda deve perder")

	assert.True(t, produtoRepo.produtos[produtoPic].Quantidade.IsZero(),
		"saldo zera, nunca negativa")
}

// Dois cancelamentos disputando a mesma venda: o status é checado dentro da
// transação, com a linha travada; o segundo enxerga a venda já cancelada e o
// estoque não volta em dobro.
func TestCancelar_DuploNaoDevolveEstoqueEmDobro(t *testing.T) {
	uc, vendaRepo, produtoRepo := buildUseCase(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "user-1", dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "4")}},
	})
	require.NoError(t, err)
	vendaRepo.congelarLeituraSemTrava() // visão que os dois cancelamentos veriam fora da tx

	require.NoError(t, uc.Cancelar(ctx, resp.ID))
	require.ErrorIs(t, uc.Cancelar(ctx, resp.ID), domain.ErrInvalidState,
		"o segundo cancelamento deve perder")

	assert.True(t, dec(t, "20").Equal(produtoRepo.produtos[produtoPic].Quantidade),
		"estoque devolvido uma única vez")
}

// Cancelar devolve o estoque e muda o status; nota autorizada bloqueia.
func TestCancelar(t *testing.T) {
	uc, vendaRepo, produtoRepo := buildUseCase(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "user-1", dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "4")}},
	})
	require.NoError(t, err)
	assert.True(t, dec(t, "16").Equal(produtoRepo.produtos[produtoPic].Quantidade))

	require.NoError(t, uc.Cancelar(ctx, resp.ID))
	assert.True(t, dec(t, "20").Equal(produtoRepo.produtos[produtoPic].Quantidade),
		"estoque devolvido")
	assert.Equal(t, entity.VendaCancelada, vendaRepo.vendas[resp.ID].Status)

	// cancelar duas vezes falha
	require.ErrorIs(t, uc.Cancelar(ctx, resp.ID), domain.ErrInvalidState)

	// nota autorizada bloqueia o cancelamento
	outra, err := uc.Create(ctx, "user-1", dto.CreateVendaRequest{
		ClienteID: clienteID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: produtoPic, Quantidade: dec(t, "1")}},
	})
	require.NoError(t, err)
	vendaRepo.vendas[outra.ID].Status = entity.VendaNotaAutorizada
	require.ErrorIs(t, uc.Cancelar(ctx, outra.ID), domain.ErrInvalidState)
}
