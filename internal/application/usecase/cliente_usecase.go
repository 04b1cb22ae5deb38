package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cadastra um cliente ativo.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Documento: in.Documento,
		Telefone:  in.Telefone,
		Email:     in.Email,
		Endereco:  in.Endereco,
		Cidade:    in.Cidade,
		UF:        in.UF,
		Status:    entity.StatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

// GetByID busca cliente por id.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, domain.ErrNotFound
	}
	return clienteToResponse(c), nil
}

// List clientes paginados.
func (uc *ClienteUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ClienteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clienteToResponse(c))
	}
	return out, nil
}

// Update edita os dados cadastrais.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		c.Nome = in.Nome
	}
	c.Documento = in.Documento
	c.Telefone = in.Telefone
	c.Email = in.Email
	c.Endereco = in.Endereco
	c.Cidade = in.Cidade
	c.UF = in.UF
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

// Inativar soft delete.
func (uc *ClienteUseCase) Inativar(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusInativo)
}

// Reativar religa o cadastro.
func (uc *ClienteUseCase) Reativar(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusAtivo)
}

func clienteToResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Documento: c.Documento,
		Telefone:  c.Telefone,
		Email:     c.Email,
		Endereco:  c.Endereco,
		Cidade:    c.Cidade,
		UF:        c.UF,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
