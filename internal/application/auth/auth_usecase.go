package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/domain"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
	"github.com/frigosul/frigosul-api/internal/domain/repository"
	"github.com/frigosul/frigosul-api/pkg/config"
	"github.com/frigosul/frigosul-api/pkg/jwt"
)

// AuthUseCase registro e login de usuários com bcrypt + JWT.
type AuthUseCase struct {
	repo repository.UsuarioRepository
	cfg  config.JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(repo repository.UsuarioRepository, cfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, cfg: cfg}
}

// Register cria um usuário. Email duplicado falha com ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: senha deve ter ao menos 8 caracteres", domain.ErrInvalidInput)
	}
	switch in.Perfil {
	case entity.PerfilAdmin, entity.PerfilGerente, entity.PerfilOperador:
	default:
		return nil, fmt.Errorf("%w: perfil %q", domain.ErrInvalidInput, in.Perfil)
	}

	if existente, err := uc.repo.FindByEmail(email); err == nil && existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Email:     email,
		SenhaHash: string(hash),
		Nome:      in.Nome,
		Perfil:    in.Perfil,
		Status:    entity.StatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return userToResponse(u), nil
}

// Login autentica e devolve um JWT. Credenciais erradas e usuário inexistente
// produzem o mesmo erro, sem vazar qual dos dois falhou.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := uc.repo.FindByEmail(email)
	if err != nil || u == nil {
		return nil, domain.ErrUnauthorized
	}
	if u.Status != entity.StatusAtivo {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Nome, u.Perfil, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *userToResponse(u)}, nil
}

// Me devolve o usuário autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, domain.ErrUserNotFound
	}
	return userToResponse(u), nil
}

func userToResponse(u *entity.Usuario) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nome:      u.Nome,
		Perfil:    u.Perfil,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
