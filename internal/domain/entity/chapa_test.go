package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
)

// As dimensões são exibidas com espaços em volta do "x".
func TestChapa_Dimensoes(t *testing.T) {
	c := entity.Chapa{
		Espessura:   decimal.RequireFromString("2"),
		Largura:     decimal.RequireFromString("1000"),
		Comprimento: decimal.RequireFromString("3000"),
	}
	assert.Equal(t, "2 x 1000 x 3000", c.Dimensoes())
}
