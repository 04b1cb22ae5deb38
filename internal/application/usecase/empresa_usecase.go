package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
)

// EmpresaUseCase configuração do emitente (registro único).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase constrói o caso de uso.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Get devolve o emitente configurado.
func (uc *EmpresaUseCase) Get(ctx context.Context) (*entity.Empresa, error) {
	e, err := uc.repo.Get()
	if err != nil || e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Upsert grava o emitente. CNPJ é obrigatório por causa da chave da NF-e.
func (uc *EmpresaUseCase) Upsert(ctx context.Context, e *entity.Empresa) (*entity.Empresa, error) {
	if e.RazaoSocial == "" {
		return nil, fmt.Errorf("%w: razão social obrigatória", domain.ErrInvalidInput)
	}
	if len(soDigitos(e.CNPJ)) != 14 {
		return nil, fmt.Errorf("%w: CNPJ deve ter 14 dígitos", domain.ErrInvalidInput)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(e); err != nil {
		return nil, err
	}
	return e, nil
}

func soDigitos(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
