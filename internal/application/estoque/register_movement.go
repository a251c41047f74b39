package estoque

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/matheusvr/estoque-chapas/internal/domain"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	domestoque "github.com/matheusvr/estoque-chapas/internal/domain/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/periodo"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

// MovimentacaoUseCase registra movimentações no ledger e reconcilia o
// agregado da chapa, além de servir o histórico filtrado por período.
type MovimentacaoUseCase struct {
	chapaRepo repository.ChapaRepository
	movRepo   repository.MovimentacaoRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(chapaRepo repository.ChapaRepository, movRepo repository.MovimentacaoRepository) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{chapaRepo: chapaRepo, movRepo: movRepo}
}

// MovimentacaoInput entrada para registrar uma movimentação.
type MovimentacaoInput struct {
	ChapaID    string
	UsuarioID  string
	Role       string
	Tipo       string // entrada | saida
	Quantidade int64
	Observacao string
}

// MovimentacaoResultado saída do registro: a linha do ledger, a chapa com o
// agregado já reconciliado e o peso implicado pela movimentação (calculado
// sobre o agregado anterior a ela).
type MovimentacaoResultado struct {
	Mov             *entity.Movimentacao
	Chapa           *entity.Chapa
	PesoMovimentado decimal.Decimal
}

// Registrar valida e grava uma transação de estoque em dois passos:
//
//  1. insere a linha imutável do ledger (sempre primeiro, para que a trilha
//     de auditoria exista mesmo que a atualização do agregado falhe);
//  2. aplica o delta de quantidade/peso ao agregado da chapa e o persiste.
//
// Não há transação nem lock envolvendo os dois passos; movimentações
// concorrentes contra a mesma chapa podem ler um agregado defasado. Se o
// passo 2 falhar depois do 1, devolve ErrReconciliacao em vez de fingir
// sucesso ou fracasso limpo.
func (uc *MovimentacaoUseCase) Registrar(ctx context.Context, input MovimentacaoInput) (*MovimentacaoResultado, error) {
	if !entity.TipoValido(input.Tipo) {
		return nil, domain.ErrEntradaInvalida
	}
	if input.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	// Checagem de capacidade na borda do motor: entrada exige controlador.
	if !domain.PodeExecutar(input.Role, domain.OperacaoDoTipo(input.Tipo)) {
		return nil, domain.ErrAcessoNegado
	}

	chapa, err := uc.chapaRepo.GetByID(input.ChapaID)
	if err != nil {
		return nil, err
	}
	if chapa == nil {
		return nil, domain.ErrNaoEncontrado
	}

	if input.Tipo == entity.MovimentacaoSaida && input.Quantidade > chapa.Quantidade {
		return nil, &domain.EstoqueInsuficienteError{Disponivel: chapa.Quantidade}
	}

	// Peso médio derivado do agregado; nenhum campo unitário é persistido.
	pesoMovimentado := domestoque.PesoMovimentado(*chapa, input.Quantidade)

	mov := &entity.Movimentacao{
		ID:         uuid.New().String(),
		ChapaID:    chapa.ID,
		UsuarioID:  input.UsuarioID,
		Tipo:       input.Tipo,
		Quantidade: input.Quantidade,
		Observacao: input.Observacao,
		CreatedAt:  time.Now(),
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, fmt.Errorf("gravar movimentação: %w", err)
	}

	deltaQtd := input.Quantidade
	deltaPeso := pesoMovimentado
	if input.Tipo == entity.MovimentacaoSaida {
		deltaQtd = -deltaQtd
		deltaPeso = deltaPeso.Neg()
	}
	atualizada := domestoque.AplicarDelta(*chapa, deltaQtd, deltaPeso)
	atualizada.UpdatedAt = time.Now()

	if err := uc.chapaRepo.UpdateAgregado(&atualizada); err != nil {
		// O ledger já foi gravado: estado divergente, não erro de entrada.
		return nil, fmt.Errorf("%w: %v", domain.ErrReconciliacao, err)
	}
	return &MovimentacaoResultado{Mov: mov, Chapa: &atualizada, PesoMovimentado: pesoMovimentado}, nil
}

// Historico devolve as linhas detalhadas do período, com o teto de linhas do
// filtro (protetor quando não há intervalo de datas).
func (uc *MovimentacaoUseCase) Historico(ctx context.Context, filtro periodo.Filtro) ([]*entity.MovimentacaoDetalhada, error) {
	intervalo, err := periodo.Resolver(filtro, time.Now())
	if err != nil {
		return nil, err
	}
	return uc.movRepo.ListDetalhadas(intervalo.Inicio, intervalo.Fim, periodo.LimiteLinhas(filtro))
}
