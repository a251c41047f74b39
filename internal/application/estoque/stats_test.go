package estoque_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
)

// Os contadores combinam o agregado das chapas com as somas do mês corrente.
// Movimentações do mês anterior ficam de fora.
func TestCalcular_ContadoresDoMes(t *testing.T) {
	chapaRepo := newFakeChapaRepo(
		&entity.Chapa{ID: "1", Codigo: "CH-001", Quantidade: 10},
		&entity.Chapa{ID: "2", Codigo: "CH-002", Quantidade: 5},
	)
	movRepo := &fakeMovRepo{}
	agora := time.Now()
	movRepo.movs = append(movRepo.movs,
		&entity.Movimentacao{ID: "m1", ChapaID: "1", Tipo: entity.MovimentacaoEntrada, Quantidade: 7, CreatedAt: agora},
		&entity.Movimentacao{ID: "m2", ChapaID: "1", Tipo: entity.MovimentacaoSaida, Quantidade: 3, CreatedAt: agora},
		&entity.Movimentacao{ID: "m3", ChapaID: "2", Tipo: entity.MovimentacaoEntrada, Quantidade: 100, CreatedAt: agora.AddDate(0, -2, 0)},
	)
	uc := estoque.NewStatsUseCase(chapaRepo, movRepo)

	stats, err := uc.Calcular(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalChapas)
	assert.Equal(t, int64(15), stats.TotalQuantidade)
	assert.Equal(t, int64(7), stats.EntradasMes, "a entrada antiga não conta")
	assert.Equal(t, int64(3), stats.SaidasMes)
	assert.False(t, stats.AtualizadoEm.IsZero())
}
