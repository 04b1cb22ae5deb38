package metas

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

// MetaUseCase gerencia metas de rendimento por produto. No máximo uma meta
// ativa por produto; a segunda tentativa falha com ErrDuplicate.
type MetaUseCase struct {
	metaRepo    repository.MetaRepository
	produtoRepo repository.ProdutoRepository
}

// NewMetaUseCase constrói o caso de uso.
func NewMetaUseCase(metaRepo repository.MetaRepository, produtoRepo repository.ProdutoRepository) *MetaUseCase {
	return &MetaUseCase{metaRepo: metaRepo, produtoRepo: produtoRepo}
}

// Create cria uma meta ativa para o produto.
func (uc *MetaUseCase) Create(ctx context.Context, in dto.CreateMetaRequest) (*dto.MetaResponse, error) {
	if in.ProdutoID == "" {
		return nil, fmt.Errorf("%w: produto obrigatório", domain.ErrInvalidInput)
	}
	if !in.MetaPorAnimal.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: meta por animal deve ser positiva", domain.ErrInvalidInput)
	}

	produto, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil || produto == nil {
		return nil, domain.ErrNotFound
	}
	if !produto.AceitaMeta() {
		return nil, fmt.Errorf("%w: produto %s não aceita meta", domain.ErrInvalidInput, produto.TipoProduto)
	}
	if atual, err := uc.metaRepo.GetAtivaPorProduto(in.ProdutoID); err != nil {
		return nil, err
	} else if atual != nil {
		return nil, fmt.Errorf("%w: produto já possui meta ativa", domain.ErrDuplicate)
	}

	now := time.Now()
	m := &entity.Meta{
		ID:            uuid.New().String(),
		ProdutoID:     produto.ID,
		ProdutoNome:   produto.Nome,
		MetaPorAnimal: in.MetaPorAnimal,
		Unidade:       produto.UnidadeSigla,
		Status:        entity.StatusAtivo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.metaRepo.Create(m); err != nil {
		return nil, err
	}
	return toResponse(m), nil
}

// Update altera a meta por animal.
func (uc *MetaUseCase) Update(ctx context.Context, id string, metaPorAnimal decimal.Decimal) (*dto.MetaResponse, error) {
	if !metaPorAnimal.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: meta por animal deve ser positiva", domain.ErrInvalidInput)
	}
	m, err := uc.metaRepo.GetByID(id)
	if err != nil || m == nil {
		return nil, domain.ErrNotFound
	}
	m.MetaPorAnimal = metaPorAnimal
	m.UpdatedAt = time.Now()
	if err := uc.metaRepo.Update(m); err != nil {
		return nil, err
	}
	return toResponse(m), nil
}

// Inativar desliga a meta; o produto passa a ter perda zero em produções novas.
func (uc *MetaUseCase) Inativar(ctx context.Context, id string) error {
	m, err := uc.metaRepo.GetByID(id)
	if err != nil || m == nil {
		return domain.ErrNotFound
	}
	return uc.metaRepo.UpdateStatus(id, entity.StatusInativo)
}

// Reativar religa a meta, desde que o produto não tenha outra ativa.
func (uc *MetaUseCase) Reativar(ctx context.Context, id string) error {
	m, err := uc.metaRepo.GetByID(id)
	if err != nil || m == nil {
		return domain.ErrNotFound
	}
	if atual, err := uc.metaRepo.GetAtivaPorProduto(m.ProdutoID); err != nil {
		return err
	} else if atual != nil && atual.ID != m.ID {
		return fmt.Errorf("%w: produto já possui meta ativa", domain.ErrDuplicate)
	}
	return uc.metaRepo.UpdateStatus(id, entity.StatusAtivo)
}

// ListAtivas metas ativas de todos os produtos.
func (uc *MetaUseCase) ListAtivas(ctx context.Context) ([]*dto.MetaResponse, error) {
	list, err := uc.metaRepo.ListAtivas()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MetaResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toResponse(m))
	}
	return out, nil
}

func toResponse(m *entity.Meta) *dto.MetaResponse {
	return &dto.MetaResponse{
		ID:            m.ID,
		ProdutoID:     m.ProdutoID,
		ProdutoNome:   m.ProdutoNome,
		MetaPorAnimal: m.MetaPorAnimal,
		Unidade:       m.Unidade,
		Status:        m.Status,
	}
}
