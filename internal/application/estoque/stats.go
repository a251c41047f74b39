package estoque

import (
	"context"
	"time"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	"github.com/matheusvr/estoque-chapas/internal/domain/periodo"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

// StatsUseCase calcula os contadores do painel: chapas cadastradas, unidades
// em estoque e o volume de entradas/saídas do mês corrente.
type StatsUseCase struct {
	chapaRepo repository.ChapaRepository
	movRepo   repository.MovimentacaoRepository
}

// NewStatsUseCase constrói o caso de uso.
func NewStatsUseCase(chapaRepo repository.ChapaRepository, movRepo repository.MovimentacaoRepository) *StatsUseCase {
	return &StatsUseCase{chapaRepo: chapaRepo, movRepo: movRepo}
}

// Calcular consulta os agregados do momento. O recorte do mês reutiliza o
// resolvedor de período.
func (uc *StatsUseCase) Calcular(ctx context.Context) (dto.StatsResponse, error) {
	tipos, quantidade, err := uc.chapaRepo.Totais()
	if err != nil {
		return dto.StatsResponse{}, err
	}

	agora := time.Now()
	mes, err := periodo.Resolver(periodo.Mes, agora)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	entradas, err := uc.movRepo.SomaQuantidadePorTipo(entity.MovimentacaoEntrada, *mes.Inicio)
	if err != nil {
		return dto.StatsResponse{}, err
	}
	saidas, err := uc.movRepo.SomaQuantidadePorTipo(entity.MovimentacaoSaida, *mes.Inicio)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	return dto.StatsResponse{
		TotalChapas:     tipos,
		TotalQuantidade: quantidade,
		EntradasMes:     entradas,
		SaidasMes:       saidas,
		AtualizadoEm:    agora,
	}, nil
}
