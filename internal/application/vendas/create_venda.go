package vendas

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

// CreateVendaUseCase registra vendas com baixa transacional de estoque.
// A venda nasce sem nota; a emissão de NF-e é um passo separado.
type CreateVendaUseCase struct {
	txRunner    TxRunner
	vendaRepo   repository.VendaRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
}

// NewCreateVendaUseCase constrói o caso de uso.
func NewCreateVendaUseCase(
	txRunner TxRunner,
	vendaRepo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
) *CreateVendaUseCase {
	return &CreateVendaUseCase{
		txRunner:    txRunner,
		vendaRepo:   vendaRepo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
	}
}

// Create valida itens contra o catálogo, baixa o estoque e grava a venda na
// mesma transação. Estoque insuficiente em qualquer item aborta tudo.
func (uc *CreateVendaUseCase) Create(ctx context.Context, userID string, in dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	if in.ClienteID == "" {
		return nil, fmt.Errorf("%w: cliente obrigatório", domain.ErrInvalidInput)
	}
	if len(in.Itens) == 0 {
		return nil, fmt.Errorf("%w: venda sem itens", domain.ErrInvalidInput)
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.Status != entity.StatusAtivo {
		return nil, fmt.Errorf("%w: cliente inativo", domain.ErrInvalidState)
	}

	now := time.Now()
	data := in.Data
	if data.IsZero() {
		data = now
	}

	v := &entity.Venda{
		ID:            uuid.New().String(),
		ClienteID:     in.ClienteID,
		Data:          data,
		Status:        entity.VendaSemNota,
		RegistradoPor: userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunVenda(ctx, func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		total := decimal.Zero
		for _, item := range in.Itens {
			if !item.Quantidade.GreaterThan(decimal.Zero) {
				return fmt.Errorf("%w: quantidade deve ser positiva", domain.ErrInvalidInput)
			}
			// Trava a linha antes de checar o saldo; duas vendas concorrentes
			// do mesmo produto serializam aqui.
			produto, err := produtoRepo.GetForUpdate(item.ProdutoID)
			if err != nil || produto == nil {
				return fmt.Errorf("%w: produto %s", domain.ErrNotFound, item.ProdutoID)
			}
			if produto.TipoProduto != entity.ProdutoVenda {
				return fmt.Errorf("%w: produto %s não é de venda", domain.ErrInvalidInput, produto.Nome)
			}
			if produto.Quantidade.LessThan(item.Quantidade) {
				return fmt.Errorf("%w: produto %s saldo %s, pedido %s", domain.ErrInsufficientStock,
					produto.Nome, produto.Quantidade.String(), item.Quantidade.String())
			}

			preco := item.PrecoUnitario
			if !preco.GreaterThan(decimal.Zero) {
				preco = produto.PrecoVenda
			}
			subtotal := preco.Mul(item.Quantidade)
			v.Itens = append(v.Itens, entity.ItemVenda{
				ID:            uuid.New().String(),
				VendaID:       v.ID,
				ProdutoID:     produto.ID,
				ProdutoNome:   produto.Nome,
				Quantidade:    item.Quantidade,
				PrecoUnitario: preco,
				Subtotal:      subtotal,
				UnidadeSigla:  produto.UnidadeSigla,
			})
			total = total.Add(subtotal)

			if err := produtoRepo.IncrementarQuantidade(produto.ID, item.Quantidade.Neg()); err != nil {
				return err
			}
		}
		v.ValorFinal = total

		numero, err := vendaRepo.ProximoNumero()
		if err != nil {
			return err
		}
		v.Numero = numero
		return vendaRepo.Create(v)
	})
	if err != nil {
		return nil, err
	}

	resp := toResponse(v)
	resp.ClienteNome = cliente.Nome
	return resp, nil
}

// GetByID devolve a venda com nome do cliente resolvido.
func (uc *CreateVendaUseCase) GetByID(ctx context.Context, id string) (*dto.VendaResponse, error) {
	v, err := uc.vendaRepo.GetByID(id)
	if err != nil || v == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(v)
	if cliente, err := uc.clienteRepo.GetByID(v.ClienteID); err == nil && cliente != nil {
		resp.ClienteNome = cliente.Nome
	}
	return resp, nil
}

// List vendas paginadas.
func (uc *CreateVendaUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.VendaResponse, error) {
	page.DefaultPage()
	list, err := uc.vendaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toResponse(v))
	}
	return out, nil
}

// Cancelar cancela a venda e devolve o estoque dos itens, na mesma transação.
// Venda com nota autorizada não é cancelável por aqui.
func (uc *CreateVendaUseCase) Cancelar(ctx context.Context, id string) error {
	return uc.txRunner.RunVenda(ctx, func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		// Leitura e checagem de status dentro da transação, com a linha
		// travada; dois cancelamentos concorrentes serializam aqui e o
		// segundo enxerga a venda já cancelada.
		v, err := vendaRepo.GetForUpdate(id)
		if err != nil || v == nil {
			return domain.ErrNotFound
		}
		if v.Status == entity.VendaNotaAutorizada {
			return fmt.Errorf("%w: venda com nota autorizada", domain.ErrInvalidState)
		}
		if v.Status == entity.VendaCancelada {
			return fmt.Errorf("%w: venda já cancelada", domain.ErrInvalidState)
		}
		for _, item := range v.Itens {
			if err := produtoRepo.IncrementarQuantidade(item.ProdutoID, item.Quantidade); err != nil {
				return err
			}
		}
		return vendaRepo.UpdateStatus(id, entity.VendaCancelada)
	})
}

func toResponse(v *entity.Venda) *dto.VendaResponse {
	resp := &dto.VendaResponse{
		ID:          v.ID,
		ClienteID:   v.ClienteID,
		Data:        v.Data,
		ValorFinal:  v.ValorFinal,
		Numero:      v.Numero,
		ChaveAcesso: v.ChaveAcesso,
		Protocolo:   v.Protocolo,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
	}
	for _, item := range v.Itens {
		resp.Itens = append(resp.Itens, dto.ItemVendaResponse{
			ProdutoID:     item.ProdutoID,
			ProdutoNome:   item.ProdutoNome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}
	return resp
}
