package usecase

import (
	"context"
	"fmt"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// ContaPagarUseCase consulta e baixa de contas a pagar. Contas nascem apenas
// na transação de criação de abate; aqui só se lista e marca como paga.
type ContaPagarUseCase struct {
	repo repository.ContaPagarRepository
}

// NewContaPagarUseCase constrói o caso de uso.
func NewContaPagarUseCase(repo repository.ContaPagarRepository) *ContaPagarUseCase {
	return &ContaPagarUseCase{repo: repo}
}

// GetByID busca conta por id.
func (uc *ContaPagarUseCase) GetByID(ctx context.Context, id string) (*dto.ContaPagarResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, domain.ErrNotFound
	}
	return contaToResponse(c), nil
}

// List contas, opcionalmente por status (pendente | pago).
func (uc *ContaPagarUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]*dto.ContaPagarResponse, error) {
	if status != "" && status != entity.ContaPendente && status != entity.ContaPaga {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	page.DefaultPage()
	list, err := uc.repo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContaPagarResponse, 0, len(list))
	for _, c := range list {
		out = append(out, contaToResponse(c))
	}
	return out, nil
}

// Pagar marca a conta como paga. Pagamento é irreversível.
func (uc *ContaPagarUseCase) Pagar(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return domain.ErrNotFound
	}
	if c.Status == entity.ContaPaga {
		return fmt.Errorf("%w: conta já paga", domain.ErrInvalidState)
	}
	return uc.repo.UpdateStatus(id, entity.ContaPaga)
}

func contaToResponse(c *entity.ContaPagar) *dto.ContaPagarResponse {
	return &dto.ContaPagarResponse{
		ID:             c.ID,
		AbateID:        c.AbateID,
		FornecedorID:   c.FornecedorID,
		Descricao:      c.Descricao,
		Valor:          c.Valor,
		DataVencimento: c.DataVencimento,
		Status:         c.Status,
	}
}
