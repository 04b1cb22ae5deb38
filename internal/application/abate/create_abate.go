package abate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	domabate "github.com/frigosul/frigosul-api/internal/domain/abate"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// CreateAbateUseCase registra lotes de abate com a conta a pagar vinculada em
// um único batch atômico, e controla as transições de status do lote.
type CreateAbateUseCase struct {
	txRunner       TxRunner
	abateRepo      repository.AbateRepository
	fornecedorRepo repository.FornecedorRepository
	contaRepo      repository.ContaPagarRepository
}

// NewCreateAbateUseCase constrói o caso de uso.
func NewCreateAbateUseCase(
	txRunner TxRunner,
	abateRepo repository.AbateRepository,
	fornecedorRepo repository.FornecedorRepository,
	contaRepo repository.ContaPagarRepository,
) *CreateAbateUseCase {
	return &CreateAbateUseCase{
		txRunner:       txRunner,
		abateRepo:      abateRepo,
		fornecedorRepo: fornecedorRepo,
		contaRepo:      contaRepo,
	}
}

// Create valida a entrada, deriva custoTotal e loteId e grava abate + conta a
// pagar na mesma transação. Falha de validação rejeita antes de qualquer escrita.
func (uc *CreateAbateUseCase) Create(ctx context.Context, userID, userNome string, in dto.CreateAbateRequest) (*dto.AbateResponse, error) {
	if in.FornecedorID == "" {
		return nil, fmt.Errorf("%w: fornecedor obrigatório", domain.ErrInvalidInput)
	}
	if err := domabate.Validar(in.NumeroAnimais, in.Condenado, in.CustoPorAnimal); err != nil {
		return nil, err
	}

	fornecedor, err := uc.fornecedorRepo.GetByID(in.FornecedorID)
	if err != nil || fornecedor == nil {
		return nil, domain.ErrNotFound
	}
	if fornecedor.Status != entity.StatusAtivo {
		return nil, fmt.Errorf("%w: fornecedor inativo", domain.ErrInvalidState)
	}

	now := time.Now()
	data := in.Data
	if data.IsZero() {
		data = now
	}

	a := &entity.Abate{
		ID:             uuid.New().String(),
		LoteID:         domabate.NovoLoteID(now),
		Data:           data,
		FornecedorID:   in.FornecedorID,
		NumeroAnimais:  in.NumeroAnimais,
		Condenado:      in.Condenado,
		CustoPorAnimal: in.CustoPorAnimal,
		CustoTotal:     domabate.CustoTotal(in.NumeroAnimais, in.CustoPorAnimal),
		Status:         entity.AbateAguardandoProcessamento,
		RegistradoPor:  userID,
		RegistradoNome: userNome,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	conta := &entity.ContaPagar{
		ID:             uuid.New().String(),
		AbateID:        a.ID,
		FornecedorID:   in.FornecedorID,
		Descricao:      fmt.Sprintf("Abate %s - %s", a.LoteID, fornecedor.Nome),
		Valor:          a.CustoTotal,
		DataVencimento: data,
		Status:         entity.ContaPendente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Ambas as escritas na mesma tx: sem abate órfão nem conta órfã.
	err = uc.txRunner.RunAbate(ctx, func(
		abateRepo repository.AbateRepository,
		contaRepo repository.ContaPagarRepository,
	) error {
		if err := abateRepo.Create(a); err != nil {
			return err
		}
		return contaRepo.Create(conta)
	})
	if err != nil {
		return nil, err
	}

	resp := toResponse(a)
	resp.ContaPagarID = conta.ID
	return resp, nil
}

// GetByID devolve um abate com a conta vinculada, se existir.
func (uc *CreateAbateUseCase) GetByID(ctx context.Context, id string) (*dto.AbateResponse, error) {
	a, err := uc.abateRepo.GetByID(id)
	if err != nil || a == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(a)
	if conta, err := uc.contaRepo.GetByAbate(id); err == nil && conta != nil {
		resp.ContaPagarID = conta.ID
	}
	return resp, nil
}

// List lista abates, opcionalmente filtrados por status.
func (uc *CreateAbateUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]*dto.AbateResponse, error) {
	page.DefaultPage()
	list, err := uc.abateRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AbateResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toResponse(a))
	}
	return out, nil
}

// Update recalcula custoTotal a partir dos fatores; status e lote não mudam
// por aqui.
func (uc *CreateAbateUseCase) Update(ctx context.Context, id string, in dto.CreateAbateRequest) (*dto.AbateResponse, error) {
	if err := domabate.Validar(in.NumeroAnimais, in.Condenado, in.CustoPorAnimal); err != nil {
		return nil, err
	}
	a, err := uc.abateRepo.GetByID(id)
	if err != nil || a == nil {
		return nil, domain.ErrNotFound
	}
	if a.Status == entity.AbateFinalizado || a.Status == entity.AbateCancelado {
		return nil, fmt.Errorf("%w: abate %s não aceita edição", domain.ErrInvalidState, a.Status)
	}
	a.NumeroAnimais = in.NumeroAnimais
	a.Condenado = in.Condenado
	a.CustoPorAnimal = in.CustoPorAnimal
	a.CustoTotal = domabate.CustoTotal(in.NumeroAnimais, in.CustoPorAnimal)
	if !in.Data.IsZero() {
		a.Data = in.Data
	}
	a.UpdatedAt = time.Now()
	if err := uc.abateRepo.Update(a); err != nil {
		return nil, err
	}
	return toResponse(a), nil
}

// Cancelar transição suave para cancelado (independente do pipeline de
// processamento). Abate finalizado não é cancelável.
func (uc *CreateAbateUseCase) Cancelar(ctx context.Context, id string) error {
	return uc.mudarStatus(id, entity.AbateCancelado, func(atual string) bool {
		return atual == entity.AbateAguardandoProcessamento || atual == entity.AbateEmProcessamento
	})
}

// Reativar desfaz o cancelamento, devolvendo o lote à fila de processamento.
func (uc *CreateAbateUseCase) Reativar(ctx context.Context, id string) error {
	return uc.mudarStatus(id, entity.AbateAguardandoProcessamento, func(atual string) bool {
		return atual == entity.AbateCancelado
	})
}

// Finalizar encerra o lote; disparado externamente ao pipeline de produção.
func (uc *CreateAbateUseCase) Finalizar(ctx context.Context, id string) error {
	return uc.mudarStatus(id, entity.AbateFinalizado, func(atual string) bool {
		return atual == entity.AbateEmProcessamento
	})
}

func (uc *CreateAbateUseCase) mudarStatus(id, novo string, permitido func(atual string) bool) error {
	a, err := uc.abateRepo.GetByID(id)
	if err != nil || a == nil {
		return domain.ErrNotFound
	}
	if !permitido(a.Status) {
		return fmt.Errorf("%w: transição %s -> %s não permitida", domain.ErrInvalidState, a.Status, novo)
	}
	return uc.abateRepo.UpdateStatus(id, novo)
}

func toResponse(a *entity.Abate) *dto.AbateResponse {
	return &dto.AbateResponse{
		ID:             a.ID,
		LoteID:         a.LoteID,
		Data:           a.Data,
		FornecedorID:   a.FornecedorID,
		NumeroAnimais:  a.NumeroAnimais,
		Condenado:      a.Condenado,
		CustoPorAnimal: a.CustoPorAnimal,
		CustoTotal:     a.CustoTotal,
		Status:         a.Status,
		RegistradoPor:  a.RegistradoPor,
		CreatedAt:      a.CreatedAt,
	}
}
