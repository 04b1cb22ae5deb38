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

// FuncionarioUseCase CRUD de funcionários.
type FuncionarioUseCase struct {
	repo repository.FuncionarioRepository
}

// NewFuncionarioUseCase constrói o caso de uso.
func NewFuncionarioUseCase(repo repository.FuncionarioRepository) *FuncionarioUseCase {
	return &FuncionarioUseCase{repo: repo}
}

// Create cadastra um funcionário ativo.
func (uc *FuncionarioUseCase) Create(ctx context.Context, in dto.FuncionarioRequest) (*dto.FuncionarioResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	now := time.Now()
	f := &entity.Funcionario{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Cargo:     in.Cargo,
		Telefone:  in.Telefone,
		Email:     in.Email,
		Status:    entity.StatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return funcionarioToResponse(f), nil
}

// GetByID busca funcionário por id.
func (uc *FuncionarioUseCase) GetByID(ctx context.Context, id string) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return nil, domain.ErrNotFound
	}
	return funcionarioToResponse(f), nil
}

// List funcionários paginados.
func (uc *FuncionarioUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.FuncionarioResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FuncionarioResponse, 0, len(list))
	for _, f := range list {
		out = append(out, funcionarioToResponse(f))
	}
	return out, nil
}

// Update edita os dados cadastrais.
func (uc *FuncionarioUseCase) Update(ctx context.Context, id string, in dto.FuncionarioRequest) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		f.Nome = in.Nome
	}
	f.Cargo = in.Cargo
	f.Telefone = in.Telefone
	f.Email = in.Email
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return funcionarioToResponse(f), nil
}

// Inativar soft delete.
func (uc *FuncionarioUseCase) Inativar(ctx context.Context, id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusInativo)
}

// Reativar religa o cadastro.
func (uc *FuncionarioUseCase) Reativar(ctx context.Context, id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusAtivo)
}

func funcionarioToResponse(f *entity.Funcionario) *dto.FuncionarioResponse {
	return &dto.FuncionarioResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		Cargo:     f.Cargo,
		Telefone:  f.Telefone,
		Email:     f.Email,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}
