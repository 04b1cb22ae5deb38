package metas

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	domproducao "github.com/frigosul/frigosul-api/internal/domain/producao"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// RendimentoUseCase reconcilia metas × produzido por abate. Leitura pura:
// recalcula tudo a cada chamada sobre as produções ativas do lote.
type RendimentoUseCase struct {
	abateRepo    repository.AbateRepository
	producaoRepo repository.ProducaoRepository
	metaRepo     repository.MetaRepository
	produtoRepo  repository.ProdutoRepository
}

// NewRendimentoUseCase constrói o caso de uso.
func NewRendimentoUseCase(
	abateRepo repository.AbateRepository,
	producaoRepo repository.ProducaoRepository,
	metaRepo repository.MetaRepository,
	produtoRepo repository.ProdutoRepository,
) *RendimentoUseCase {
	return &RendimentoUseCase{
		abateRepo:    abateRepo,
		producaoRepo: producaoRepo,
		metaRepo:     metaRepo,
		produtoRepo:  produtoRepo,
	}
}

// PorAbate devolve o rendimento agregado do lote: uma linha por produto com
// meta ativa, somando quantidades e perdas de todas as produções ativas do
// abate. Produto sem meta teórica positiva fica fora da agregação.
func (uc *RendimentoUseCase) PorAbate(ctx context.Context, abateID string) (*dto.RendimentoAbateDTO, error) {
	abate, err := uc.abateRepo.GetByID(abateID)
	if err != nil || abate == nil {
		return nil, domain.ErrNotFound
	}
	metas, err := uc.metaRepo.ListAtivas()
	if err != nil {
		return nil, err
	}
	producoes, err := uc.producaoRepo.ListByAbate(abateID)
	if err != nil {
		return nil, err
	}

	// Soma produzido e perda por produto, apenas de produções ativas.
	produzido := map[string]decimal.Decimal{}
	perdas := map[string]decimal.Decimal{}
	for _, p := range producoes {
		if p.Status != entity.ProducaoAtiva {
			continue
		}
		for _, item := range p.Itens {
			produzido[item.ProdutoID] = produzido[item.ProdutoID].Add(item.Quantidade)
			perdas[item.ProdutoID] = perdas[item.ProdutoID].Add(item.Perda)
		}
	}

	out := &dto.RendimentoAbateDTO{
		AbateID:        abate.ID,
		LoteID:         abate.LoteID,
		AnimaisValidos: abate.AnimaisValidos(),
	}
	totalRealizado := decimal.Zero
	totalPerda := decimal.Zero
	for _, meta := range metas {
		teorica := domproducao.MetaTeorica(abate.NumeroAnimais, abate.Condenado, meta.MetaPorAnimal)
		if !teorica.GreaterThan(decimal.Zero) {
			continue
		}
		produto, err := uc.produtoRepo.GetByID(meta.ProdutoID)
		if err != nil || produto == nil {
			continue
		}
		total := produzido[meta.ProdutoID]
		perda := perdas[meta.ProdutoID]
		realizado := domproducao.ValorRealizado(total, produto.ValorReferencia())
		valorPerda := domproducao.ValorPerda(perda, produto.CustoUnitario)

		out.Produtos = append(out.Produtos, dto.RendimentoProdutoDTO{
			ProdutoID:           meta.ProdutoID,
			ProdutoNome:         meta.ProdutoNome,
			Unidade:             meta.Unidade,
			MetaTeorica:         teorica,
			TotalProduzido:      total,
			PerdaRegistrada:     perda,
			ProgressoPercentual: domproducao.ProgressoPercentual(total, teorica),
			ValorRealizado:      realizado,
			ValorPerda:          valorPerda,
		})
		totalRealizado = totalRealizado.Add(realizado)
		totalPerda = totalPerda.Add(valorPerda)
	}
	out.Eficiencia = domproducao.Eficiencia(totalRealizado, totalPerda)
	return out, nil
}
