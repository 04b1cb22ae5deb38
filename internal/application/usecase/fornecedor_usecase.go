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

// FornecedorUseCase CRUD de fornecedores com soft delete por status.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Create cadastra um fornecedor ativo.
func (uc *FornecedorUseCase) Create(ctx context.Context, in dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	now := time.Now()
	f := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CNPJ:      in.CNPJ,
		Telefone:  in.Telefone,
		Email:     in.Email,
		Endereco:  in.Endereco,
		Cidade:    in.Cidade,
		UF:        in.UF,
		Status:    entity.StatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return fornecedorToResponse(f), nil
}

// GetByID busca fornecedor por id.
func (uc *FornecedorUseCase) GetByID(ctx context.Context, id string) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return nil, domain.ErrNotFound
	}
	return fornecedorToResponse(f), nil
}

// List fornecedores paginados.
func (uc *FornecedorUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.FornecedorResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		out = append(out, fornecedorToResponse(f))
	}
	return out, nil
}

// Update edita os dados cadastrais.
func (uc *FornecedorUseCase) Update(ctx context.Context, id string, in dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		f.Nome = in.Nome
	}
	f.CNPJ = in.CNPJ
	f.Telefone = in.Telefone
	f.Email = in.Email
	f.Endereco = in.Endereco
	f.Cidade = in.Cidade
	f.UF = in.UF
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return fornecedorToResponse(f), nil
}

// Inativar soft delete; abates antigos continuam apontando para o registro.
func (uc *FornecedorUseCase) Inativar(ctx context.Context, id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusInativo)
}

// Reativar religa o cadastro.
func (uc *FornecedorUseCase) Reativar(ctx context.Context, id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, entity.StatusAtivo)
}

func fornecedorToResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		CNPJ:      f.CNPJ,
		Telefone:  f.Telefone,
		Email:     f.Email,
		Endereco:  f.Endereco,
		Cidade:    f.Cidade,
		UF:        f.UF,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}
