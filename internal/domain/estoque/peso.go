package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/matheusvr/estoque-chapas/internal/domain"
)

// FatorDensidade é a densidade do aço combinada com a conversão de unidades
// (dimensões em mm, resultado em kg): 7.85 g/cm³ ≈ 0.0000144 kg/mm³ útil.
// Fixo para o único material suportado; definido na criação da chapa e nunca
// reavaliado retroativamente.
var FatorDensidade = decimal.RequireFromString("0.0000144")

// PesoUnitarioPorDimensoes deriva o peso de uma unidade (kg) pela fórmula
// dimensional: espessura × largura × comprimento × FatorDensidade.
// As três dimensões devem ser > 0; caso contrário devolve ErrEntradaInvalida.
func PesoUnitarioPorDimensoes(espessura, largura, comprimento decimal.Decimal) (decimal.Decimal, error) {
	if !espessura.IsPositive() || !largura.IsPositive() || !comprimento.IsPositive() {
		return decimal.Zero, domain.ErrEntradaInvalida
	}
	return espessura.Mul(largura).Mul(comprimento).Mul(FatorDensidade), nil
}

// PesoInicial calcula o peso total que semeia o agregado de uma chapa nova:
// peso unitário × quantidade inicial. É o total, não o unitário, que a
// chapa armazena dali em diante.
func PesoInicial(pesoUnitario decimal.Decimal, quantidade int64) decimal.Decimal {
	return pesoUnitario.Mul(decimal.NewFromInt(quantidade))
}
