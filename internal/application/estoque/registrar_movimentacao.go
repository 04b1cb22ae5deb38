package estoque

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

// RegistrarMovimentacaoUseCase lançamentos manuais de estoque: entrada soma,
// saída subtrai, sempre junto do registro da movimentação na mesma transação.
type RegistrarMovimentacaoUseCase struct {
	txRunner    TxRunner
	movRepo     repository.MovimentacaoRepository
	produtoRepo repository.ProdutoRepository
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso.
func NewRegistrarMovimentacaoUseCase(
	txRunner TxRunner,
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{
		txRunner:    txRunner,
		movRepo:     movRepo,
		produtoRepo: produtoRepo,
	}
}

// Registrar valida e aplica o lançamento. Saída que deixaria o saldo negativo
// é rejeitada com ErrInsufficientStock antes de qualquer escrita.
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, userID string, in dto.RegistrarMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if in.ProdutoID == "" {
		return nil, fmt.Errorf("%w: produto obrigatório", domain.ErrInvalidInput)
	}
	if in.Tipo != entity.MovimentacaoEntrada && in.Tipo != entity.MovimentacaoSaida {
		return nil, fmt.Errorf("%w: tipo de movimentação %q", domain.ErrInvalidInput, in.Tipo)
	}
	if !in.Quantidade.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantidade deve ser positiva", domain.ErrInvalidInput)
	}
	if in.Motivo == "" {
		return nil, fmt.Errorf("%w: motivo obrigatório", domain.ErrInvalidInput)
	}

	mov := &entity.MovimentacaoEstoque{
		ID:          uuid.New().String(),
		ProdutoID:   in.ProdutoID,
		Tipo:        in.Tipo,
		Quantidade:  in.Quantidade,
		Motivo:      in.Motivo,
		Observacoes: in.Observacoes,
		CreatedAt:   time.Now(),
		CreatedBy:   userID,
	}

	err := uc.txRunner.RunEstoque(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		// Trava a linha antes de checar o saldo; sem isso duas saídas
		// concorrentes enxergam o mesmo saldo e ambas passam.
		produto, err := produtoRepo.GetForUpdate(in.ProdutoID)
		if err != nil || produto == nil {
			return domain.ErrNotFound
		}
		delta := in.Quantidade
		if in.Tipo == entity.MovimentacaoSaida {
			if produto.Quantidade.LessThan(in.Quantidade) {
				return fmt.Errorf("%w: saldo %s, saída %s", domain.ErrInsufficientStock,
					produto.Quantidade.String(), in.Quantidade.String())
			}
			delta = in.Quantidade.Neg()
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return produtoRepo.IncrementarQuantidade(in.ProdutoID, delta)
	})
	if err != nil {
		return nil, err
	}

	return toResponse(mov), nil
}

// List histórico de movimentações, opcionalmente por produto.
func (uc *RegistrarMovimentacaoUseCase) List(ctx context.Context, produtoID string, page dto.PageRequest) ([]*dto.MovimentacaoResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.MovimentacaoEstoque
		err  error
	)
	if produtoID != "" {
		list, err = uc.movRepo.ListByProduto(produtoID, page.Limit, page.Offset)
	} else {
		list, err = uc.movRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toResponse(m))
	}
	return out, nil
}

func toResponse(m *entity.MovimentacaoEstoque) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:         m.ID,
		ProdutoID:  m.ProdutoID,
		Tipo:       m.Tipo,
		Quantidade: m.Quantidade,
		Motivo:     m.Motivo,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}
