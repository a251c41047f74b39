package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/matheusvr/estoque-chapas/internal/domain"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementação do porto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository constrói o adaptador de persistência de usuários.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste um usuário novo.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, nome, email, senha_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Nome, profile.Email, profile.SenhaHash, profile.Role,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID busca um usuário por ID. Devolve nil sem erro quando não existe.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return r.get(`SELECT id, nome, email, senha_hash, role, created_at, updated_at FROM profiles WHERE id = $1`, id)
}

// GetByEmail busca um usuário por email. Devolve nil sem erro quando não existe.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	return r.get(`SELECT id, nome, email, senha_hash, role, created_at, updated_at FROM profiles WHERE email = $1`, email)
}

func (r *ProfileRepo) get(query string, arg any) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nome, &p.Email, &p.SenhaHash, &p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
