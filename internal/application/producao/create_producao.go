package producao

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	domproducao "github.com/frigosul/frigosul-api/internal/domain/producao"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// CreateProducaoUseCase registra produções consumindo um abate: deriva perdas
// a partir das metas ativas, incrementa estoque de forma atômica e gera
// sub-lotes de rastreabilidade para produtos com controle de lote.
type CreateProducaoUseCase struct {
	txRunner     TxRunner
	producaoRepo repository.ProducaoRepository
	produtoRepo  repository.ProdutoRepository
	loteRepo     repository.LoteRepository
}

// NewCreateProducaoUseCase constrói o caso de uso.
func NewCreateProducaoUseCase(
	txRunner TxRunner,
	producaoRepo repository.ProducaoRepository,
	produtoRepo repository.ProdutoRepository,
	loteRepo repository.LoteRepository,
) *CreateProducaoUseCase {
	return &CreateProducaoUseCase{
		txRunner:     txRunner,
		producaoRepo: producaoRepo,
		produtoRepo:  produtoRepo,
		loteRepo:     loteRepo,
	}
}

// Create executa o registro em uma transação:
//  1. trava o abate (SELECT FOR UPDATE) e valida que aceita processamento;
//  2. resolve produtos e deriva perda por item via meta ativa;
//  3. grava cabeçalho + itens da produção;
//  4. incrementa o saldo de cada produto com quantidade > 0;
//  5. gera sub-lotes para produtos com controle de lote;
//  6. muda o abate para em_processamento.
//
// Concorrência perde na trava do abate e falha; o chamador reenvia se quiser.
func (uc *CreateProducaoUseCase) Create(ctx context.Context, userID string, in dto.CreateProducaoRequest) (*dto.ProducaoResponse, error) {
	if in.AbateID == "" {
		return nil, fmt.Errorf("%w: abate obrigatório", domain.ErrInvalidInput)
	}
	if len(in.Itens) == 0 {
		return nil, fmt.Errorf("%w: produção sem itens", domain.ErrInvalidInput)
	}
	for _, item := range in.Itens {
		if item.ProdutoID == "" {
			return nil, fmt.Errorf("%w: item sem produto", domain.ErrInvalidInput)
		}
		if item.Quantidade.IsNegative() {
			return nil, fmt.Errorf("%w: quantidade negativa para produto %s", domain.ErrInvalidInput, item.ProdutoID)
		}
	}

	now := time.Now()
	data := in.Data
	if data.IsZero() {
		data = now
	}

	p := &entity.Producao{
		ID:            uuid.New().String(),
		Data:          data,
		ResponsavelID: in.ResponsavelID,
		AbateID:       in.AbateID,
		RegistradoPor: userID,
		Status:        entity.ProducaoAtiva,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunProducao(ctx, func(
		abateRepo repository.AbateRepository,
		producaoRepo repository.ProducaoRepository,
		produtoRepo repository.ProdutoRepository,
		metaRepo repository.MetaRepository,
		loteRepo repository.LoteRepository,
	) error {
		abate, err := abateRepo.GetForUpdate(in.AbateID)
		if err != nil || abate == nil {
			return domain.ErrNotFound
		}
		if !abate.PodeProcessar() {
			return fmt.Errorf("%w: abate %s não aceita produção", domain.ErrInvalidState, abate.Status)
		}
		p.Lote = abate.LoteID

		for _, item := range in.Itens {
			produto, err := produtoRepo.GetByID(item.ProdutoID)
			if err != nil || produto == nil {
				return fmt.Errorf("%w: produto %s", domain.ErrNotFound, item.ProdutoID)
			}

			// Perda deriva da meta ativa; sem meta, perda zero.
			perda := decimal.Zero
			if produto.AceitaMeta() {
				meta, err := metaRepo.GetAtivaPorProduto(produto.ID)
				if err != nil {
					return err
				}
				if meta != nil {
					teorica := domproducao.MetaTeorica(abate.NumeroAnimais, abate.Condenado, meta.MetaPorAnimal)
					perda = domproducao.Perda(teorica, item.Quantidade)
				}
			}
			p.Itens = append(p.Itens, entity.ItemProducao{
				ProdutoID:    produto.ID,
				ProdutoNome:  produto.Nome,
				Quantidade:   item.Quantidade,
				Perda:        perda,
				UnidadeSigla: produto.UnidadeSigla,
			})

			if item.Quantidade.GreaterThan(decimal.Zero) {
				if err := produtoRepo.IncrementarQuantidade(produto.ID, item.Quantidade); err != nil {
					return err
				}
				if produto.ControlaLote {
					lote := &entity.LoteGerado{
						ID:                uuid.New().String(),
						ProducaoID:        p.ID,
						LoteNumero:        fmt.Sprintf("%s-%s", abate.LoteID, produto.ID[:8]),
						ProdutoID:         produto.ID,
						QuantidadeInicial: item.Quantidade,
						QuantidadeAtual:   item.Quantidade,
						DataProducao:      data,
						DataValidade:      data.AddDate(0, 0, produto.DiasValidade),
					}
					if err := loteRepo.Create(lote); err != nil {
						return err
					}
					p.LotesGerados = append(p.LotesGerados, *lote)
				}
			}
		}

		if err := producaoRepo.Create(p); err != nil {
			return err
		}
		return abateRepo.UpdateStatus(abate.ID, entity.AbateEmProcessamento)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// GetByID devolve a produção com itens e lotes gerados.
func (uc *CreateProducaoUseCase) GetByID(ctx context.Context, id string) (*dto.ProducaoResponse, error) {
	p, err := uc.producaoRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	if len(p.LotesGerados) == 0 {
		if lotes, err := uc.loteRepo.ListByProducao(id); err == nil {
			for _, l := range lotes {
				p.LotesGerados = append(p.LotesGerados, *l)
			}
		}
	}
	return toResponse(p), nil
}

// List lista produções paginadas.
func (uc *CreateProducaoUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProducaoResponse, error) {
	page.DefaultPage()
	list, err := uc.producaoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProducaoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toResponse(p))
	}
	return out, nil
}

// ListByAbate produções de um abate específico.
func (uc *CreateProducaoUseCase) ListByAbate(ctx context.Context, abateID string) ([]*dto.ProducaoResponse, error) {
	list, err := uc.producaoRepo.ListByAbate(abateID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProducaoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toResponse(p))
	}
	return out, nil
}

// UpdateCabecalho edita data e responsável. Itens não mudam após a criação;
// correção de quantidade vai por movimentação manual de estoque.
func (uc *CreateProducaoUseCase) UpdateCabecalho(ctx context.Context, id string, in dto.UpdateProducaoRequest) error {
	p, err := uc.producaoRepo.GetByID(id)
	if err != nil || p == nil {
		return domain.ErrNotFound
	}
	if p.Status != entity.ProducaoAtiva {
		return fmt.Errorf("%w: produção inativa não aceita edição", domain.ErrInvalidState)
	}
	data := in.Data
	if data.IsZero() {
		data = p.Data
	}
	responsavel := in.ResponsavelID
	if responsavel == "" {
		responsavel = p.ResponsavelID
	}
	return uc.producaoRepo.UpdateCabecalho(id, data, responsavel)
}

// Inativar soft delete da produção. O estoque já incrementado NÃO é revertido
// automaticamente; o ajuste é responsabilidade de uma movimentação manual.
func (uc *CreateProducaoUseCase) Inativar(ctx context.Context, id string) error {
	p, err := uc.producaoRepo.GetByID(id)
	if err != nil || p == nil {
		return domain.ErrNotFound
	}
	return uc.producaoRepo.UpdateStatus(id, entity.ProducaoInativa)
}

func toResponse(p *entity.Producao) *dto.ProducaoResponse {
	resp := &dto.ProducaoResponse{
		ID:            p.ID,
		Data:          p.Data,
		ResponsavelID: p.ResponsavelID,
		AbateID:       p.AbateID,
		Lote:          p.Lote,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
	for _, item := range p.Itens {
		resp.Itens = append(resp.Itens, dto.ItemProducaoResponse{
			ProdutoID:    item.ProdutoID,
			ProdutoNome:  item.ProdutoNome,
			Quantidade:   item.Quantidade,
			Perda:        item.Perda,
			UnidadeSigla: item.UnidadeSigla,
		})
	}
	for _, l := range p.LotesGerados {
		resp.LotesGerados = append(resp.LotesGerados, dto.LoteGeradoResponse{
			LoteNumero:        l.LoteNumero,
			ProdutoID:         l.ProdutoID,
			QuantidadeInicial: l.QuantidadeInicial,
			QuantidadeAtual:   l.QuantidadeAtual,
			DataProducao:      l.DataProducao,
			DataValidade:      l.DataValidade,
		})
	}
	return resp
}
