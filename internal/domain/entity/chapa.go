package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Chapa representa um item de estoque de chapa de aço: dimensões fixas e um
// agregado mutável de quantidade/peso total em estoque.
// Peso é o peso TOTAL das unidades em mãos (kg), não o peso unitário;
// o peso unitário é sempre derivado como Peso/Quantidade.
type Chapa struct {
	ID          string
	Codigo      string // chave de negócio, ex. "CH-001" (única por convenção)
	Descricao   string
	Espessura   decimal.Decimal // mm, > 0
	Largura     decimal.Decimal // mm, > 0
	Comprimento decimal.Decimal // mm, > 0
	Unidade     string          // rótulo da unidade de medida, ex. "un"
	Localizacao string          // texto livre, opcional
	Quantidade  int64           // invariante: >= 0
	Peso        decimal.Decimal // kg, invariante: >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Dimensoes devolve a descrição "espessura x largura x comprimento" usada nos
// relatórios, ex. "2 x 1000 x 3000".
func (c Chapa) Dimensoes() string {
	return c.Espessura.String() + " x " + c.Largura.String() + " x " + c.Comprimento.String()
}
