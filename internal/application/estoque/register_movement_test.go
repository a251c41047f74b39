package estoque_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
)

func chapaEmEstoque(qtd int64, peso string) *entity.Chapa {
	return &entity.Chapa{
		ID:          "chapa-1",
		Codigo:      "CH-001",
		Descricao:   "Chapa A36",
		Espessura:   decimal.NewFromInt(2),
		Largura:     decimal.NewFromInt(1000),
		Comprimento: decimal.NewFromInt(3000),
		Quantidade:  qtd,
		Peso:        decimal.RequireFromString(peso),
	}
}

func novaMovimentacao(tipo string, qtd int64) estoque.MovimentacaoInput {
	return estoque.MovimentacaoInput{
		ChapaID:    "chapa-1",
		UsuarioID:  "user-1",
		Role:       entity.RoleControlador,
		Tipo:       tipo,
		Quantidade: qtd,
	}
}

// Entrada soma quantidade e peso proporcional ao agregado.
func TestRegistrar_EntradaAtualizaAgregado(t *testing.T) {
	chapaRepo := newFakeChapaRepo(chapaEmEstoque(10, "864"))
	movRepo := &fakeMovRepo{}
	uc := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)

	res, err := uc.Registrar(context.Background(), novaMovimentacao(entity.MovimentacaoEntrada, 5))
	require.NoError(t, err)

	assert.Equal(t, int64(15), res.Chapa.Quantidade)
	// Peso médio 86.4/un: entrada de 5 soma 432 kg.
	assert.True(t, res.Chapa.Peso.Equal(decimal.RequireFromString("1296")),
		"peso esperado 1296, obtido %s", res.Chapa.Peso)
	assert.True(t, res.PesoMovimentado.Equal(decimal.RequireFromString("432")))

	require.Len(t, movRepo.movs, 1, "a entrada deve gerar exatamente uma linha no ledger")
	assert.Equal(t, entity.MovimentacaoEntrada, movRepo.movs[0].Tipo)
	assert.Equal(t, int64(5), movRepo.movs[0].Quantidade)
}

// Saída subtrai quantidade e o peso proporcional (10 un / 864 kg - 4 un -> 518.4 kg).
func TestRegistrar_SaidaProporcional(t *testing.T) {
	chapaRepo := newFakeChapaRepo(chapaEmEstoque(10, "864"))
	movRepo := &fakeMovRepo{}
	uc := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)

	res, err := uc.Registrar(context.Background(), novaMovimentacao(entity.MovimentacaoSaida, 4))
	require.NoError(t, err)

	assert.Equal(t, int64(6), res.Chapa.Quantidade)
	assert.True(t, res.Chapa.Peso.Equal(decimal.RequireFromString("518.4")),
		"peso esperado 518.4, obtido %s", res.Chapa.Peso)

	persistida, err := chapaRepo.GetByID("chapa-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), persistida.Quantidade)
	assert.True(t, persistida.Peso.Equal(decimal.RequireFromString("518.4")))
}

// Saída que esvazia o estoque zera os dois campos do agregado.
func TestRegistrar_SaidaTotalZeraAgregado(t *testing.T) {
	chapaRepo := newFakeChapaRepo(chapaEmEstoque(10, "864"))
	movRepo := &fakeMovRepo{}
	uc := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)

	res, err := uc.Registrar(context.Background(), novaMovimentacao(entity.MovimentacaoSaida, 10))
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Chapa.Quantidade)
	assert.True(t, res.Chapa.Peso.IsZero(), "peso deve zerar, obtido %s", res.Chapa.Peso)
}

// Saída maior que o disponível é rejeitada com a quantidade disponível e
// NÃO gera linha no ledger.
func TestRegistrar_SaidaInsuficienteNaoGravaLedger(t *testing.T) {
	chapaRepo := newFakeChapaRepo(chapaEmEstoque(5, "432"))
	movRepo := &fakeMovRepo{}
	uc := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)

	_, err := uc.Registrar(context.Background(), novaMovimentacao(entity.MovimentacaoSaida, 8))
	require.Error(t, err)

	var insuf *domain.EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, int64(5), insuf.Disponivel)
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	assert.Empty(t, movRepo.movs, "rejeição não pode deixar rastro no ledger")
	intacta, _ := chapaRepo.GetByID("chapa-1")
	assert.Equal(t, int64(5), intacta.Quantidade, "agregado deve ficar intacto")
}

// Tipo desconhecido e quantidade não positiva são rejeitados antes de
// qualquer escrita.
func TestRegistrar_EntradasInvalidas(t *testing.T) {
	casos := []struct {
		nome  string
		input estoque.MovimentacaoInput
	}{
		{"tipo desconhecido", novaMovimentacao("transferencia", 1)},
		{"quantidade zero", novaMovimentacao(entity.MovimentacaoEntrada, 0)},
		{"quantidade negativa", novaMovimentacao(entity.MovimentacaoSaida, -3)},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			chapaRepo := newFakeChapaRepo(chapaEmEstoque(10, "864"))
			movRepo := &fakeMovRepo{}
			uc := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)

			_, err := uc.Registrar(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
			assert.Empty(t, movRepo.movs)
		})
	}
}

// Operador não registra entradas; saídas continuam permitidas.
func TestRegistrar_OperadorSoRegistraSaida(t *testing.T) {
	chapaRepo := newFakeChapaRepo(chapaEmEstoque(10, "864"))
	movRepo := &fakeMovRepo{}
	uc := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)

	entrada := novaMovimentacao(entity.MovimentacaoEntrada, 1)
	entrada.Role = entity.RoleOperador
	_, err := uc.Registrar(context.Background(), entrada)
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)
	assert.Empty(t, movRepo.movs)

	saida := novaMovimentacao(entity.MovimentacaoSaida, 2)
	saida.Role = entity.RoleOperador
	_, err = uc.Registrar(context.Background(), saida)
	assert.NoError(t, err)
}

// Chapa inexistente.
func TestRegistrar_ChapaNaoEncontrada(t *testing.T) {
	uc := estoque.NewMovimentacaoUseCase(newFakeChapaRepo(), &fakeMovRepo{})

	_, err := uc.Registrar(context.Background(), novaMovimentacao(entity.MovimentacaoEntrada, 1))
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// Falha na atualização do agregado DEPOIS do ledger gravado: o erro de
// reconciliação é exposto e a linha do ledger permanece.
func TestRegistrar_FalhaReconciliacaoPreservaLedger(t *testing.T) {
	chapaRepo := newFakeChapaRepo(chapaEmEstoque(10, "864"))
	chapaRepo.falhaUpdate = errors.New("conexão caiu")
	movRepo := &fakeMovRepo{}
	uc := estoque.NewMovimentacaoUseCase(chapaRepo, movRepo)

	_, err := uc.Registrar(context.Background(), novaMovimentacao(entity.MovimentacaoSaida, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReconciliacao)

	require.Len(t, movRepo.movs, 1, "o ledger gravado antes da falha deve permanecer")
	intacta, _ := chapaRepo.GetByID("chapa-1")
	assert.Equal(t, int64(10), intacta.Quantidade, "o agregado não pode ter sido alterado")
}

// Período desconhecido no histórico.
func TestHistorico_PeriodoDesconhecido(t *testing.T) {
	uc := estoque.NewMovimentacaoUseCase(newFakeChapaRepo(), &fakeMovRepo{})

	_, err := uc.Historico(context.Background(), "quinzena")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
