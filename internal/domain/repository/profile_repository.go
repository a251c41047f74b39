package repository

import "github.com/matheusvr/estoque-chapas/internal/domain/entity"

// ProfileRepository define o porto de persistência para Profile (DIP).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, error)
}
