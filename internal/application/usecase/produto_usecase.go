package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// ProdutoUseCase CRUD do catálogo de produtos. O saldo (quantidade) nunca é
// editado por aqui; só muda pela produção, venda ou movimentação manual.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cadastra um produto com saldo zero.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	if err := validarProduto(in); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Produto{
		ID:            uuid.New().String(),
		Nome:          in.Nome,
		TipoProduto:   in.TipoProduto,
		Quantidade:    decimal.Zero,
		CustoUnitario: in.CustoUnitario,
		PrecoVenda:    in.PrecoVenda,
		UnidadeID:     in.UnidadeID,
		UnidadeSigla:  in.UnidadeSigla,
		ControlaLote:  in.ControlaLote,
		DiasValidade:  in.DiasValidade,
		Status:        entity.StatusAtivo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

// GetByID busca produto por id.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, id string) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	return produtoToResponse(p), nil
}

// List produtos, opcionalmente por tipo.
func (uc *ProdutoUseCase) List(ctx context.Context, tipo string, page dto.PageRequest) ([]*dto.ProdutoResponse, error) {
	if tipo != "" && !entity.TipoProdutoValido(tipo) {
		return nil, fmt.Errorf("%w: tipo de produto %q", domain.ErrInvalidInput, tipo)
	}
	page.DefaultPage()
	list, err := uc.repo.List(tipo, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, produtoToResponse(p))
	}
	return out, nil
}

// Update edita dados cadastrais e preços; quantidade não muda.
func (uc *ProdutoUseCase) Update(ctx context.Context, id string, in dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	if err := validarProduto(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	p.Nome = in.Nome
	p.TipoProduto = in.TipoProduto
	p.CustoUnitario = in.CustoUnitario
	p.PrecoVenda = in.PrecoVenda
	p.UnidadeID = in.UnidadeID
	p.UnidadeSigla = in.UnidadeSigla
	p.ControlaLote = in.ControlaLote
	p.DiasValidade = in.DiasValidade
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

// Inativar soft delete; histórico de produções e vendas permanece.
func (uc *ProdutoUseCase) Inativar(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusInativo)
}

// Reativar religa o produto.
func (uc *ProdutoUseCase) Reativar(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusAtivo)
}

func validarProduto(in dto.ProdutoRequest) error {
	if in.Nome == "" {
		return fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	if !entity.TipoProdutoValido(in.TipoProduto) {
		return fmt.Errorf("%w: tipo de produto %q", domain.ErrInvalidInput, in.TipoProduto)
	}
	if in.CustoUnitario.IsNegative() || in.PrecoVenda.IsNegative() {
		return fmt.Errorf("%w: valores não podem ser negativos", domain.ErrInvalidInput)
	}
	if in.ControlaLote && in.DiasValidade <= 0 {
		return fmt.Errorf("%w: produto com controle de lote exige dias de validade", domain.ErrInvalidInput)
	}
	return nil
}

func produtoToResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		TipoProduto:   p.TipoProduto,
		Quantidade:    p.Quantidade,
		CustoUnitario: p.CustoUnitario,
		PrecoVenda:    p.PrecoVenda,
		UnidadeSigla:  p.UnidadeSigla,
		ControlaLote:  p.ControlaLote,
		DiasValidade:  p.DiasValidade,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}
