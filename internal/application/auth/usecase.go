// Package auth implementa registro e login de usuários.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/domain"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
	"github.com/matheusvr/estoque-chapas/pkg/jwt"
)

// JWTConfig parâmetros para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário com a senha hasheada via bcrypt. Role vazio assume
// operador. Devolve ErrEmailJaCadastrado se o email já existir.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Nome) == "" || in.Senha == "" {
		return nil, fmt.Errorf("%w: nome, email e senha são obrigatórios", domain.ErrEntradaInvalida)
	}

	role := in.Role
	if role == "" {
		role = entity.RoleOperador
	}
	if role != entity.RoleControlador && role != entity.RoleOperador {
		return nil, fmt.Errorf("%w: role inválido: %s", domain.ErrEntradaInvalida, in.Role)
	}

	existente, _ := uc.profileRepo.GetByEmail(email)
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	profile := &entity.Profile{
		ID:        uuid.New().String(),
		Nome:      strings.TrimSpace(in.Nome),
		Email:     email,
		SenhaHash: string(hash),
		Role:      role,
		CreatedAt: agora,
		UpdatedAt: agora,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Login verifica email/senha e emite o JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.profileRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNaoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Nome, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toProfileResponse(profile)}, nil
}

// Me devolve o perfil do usuário autenticado pelo ID do token.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        p.ID,
		Nome:      p.Nome,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}
