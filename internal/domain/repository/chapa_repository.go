package repository

import "github.com/matheusvr/estoque-chapas/internal/domain/entity"

// ChapaRepository define o porto de persistência para Chapa (DIP).
type ChapaRepository interface {
	Create(chapa *entity.Chapa) error
	GetByID(id string) (*entity.Chapa, error)
	// List devolve as chapas ordenadas por código ascendente.
	List() ([]*entity.Chapa, error)
	// UpdateAgregado grava somente o agregado quantidade/peso (e updated_at).
	// Os campos descritivos são imutáveis após a criação.
	UpdateAgregado(chapa *entity.Chapa) error
	Delete(id string) error
	// Totais devolve o número de chapas cadastradas e a soma das quantidades em estoque.
	Totais() (tipos int64, quantidade int64, err error)
}
