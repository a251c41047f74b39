package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
)

// AplicarDelta aplica um delta assinado de quantidade/peso ao agregado da
// chapa e devolve a cópia atualizada. Os dois campos são grampeados em zero:
// agregados negativos não fazem sentido e nunca podem ser persistidos, mesmo
// que a aritmética a montante produza um (ex. movimentações concorrentes que
// ultrapassem a checagem de estoque, ou resíduo de arredondamento).
//
// Nenhum outro componente escreve Chapa.Quantidade ou Chapa.Peso diretamente;
// toda mutação do agregado passa por aqui.
func AplicarDelta(chapa entity.Chapa, deltaQuantidade int64, deltaPeso decimal.Decimal) entity.Chapa {
	novaQtd := chapa.Quantidade + deltaQuantidade
	if novaQtd < 0 {
		novaQtd = 0
	}
	novoPeso := chapa.Peso.Add(deltaPeso)
	if novoPeso.IsNegative() {
		novoPeso = decimal.Zero
	}
	chapa.Quantidade = novaQtd
	chapa.Peso = novoPeso
	return chapa
}

// PesoUnitarioAtual deriva o peso médio por unidade a partir do agregado
// (peso total ÷ quantidade), já que nenhum campo unitário é persistido.
// Quantidade zero ou peso não positivo devolvem zero.
func PesoUnitarioAtual(chapa entity.Chapa) decimal.Decimal {
	if chapa.Quantidade <= 0 || !chapa.Peso.IsPositive() {
		return decimal.Zero
	}
	return chapa.Peso.Abs().Div(decimal.NewFromInt(chapa.Quantidade))
}

// PesoMovimentado calcula o peso implicado por mover quantidade unidades da
// chapa ao peso médio atual.
func PesoMovimentado(chapa entity.Chapa, quantidade int64) decimal.Decimal {
	return PesoUnitarioAtual(chapa).Mul(decimal.NewFromInt(quantidade))
}
