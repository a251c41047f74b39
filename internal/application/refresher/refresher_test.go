package refresher_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/application/refresher"
	"github.com/matheusvr/estoque-chapas/pkg/logger"
)

// fakeFonte conta quantas releituras aconteceram.
type fakeFonte struct {
	chamadas atomic.Int64
	falha    error
}

func (f *fakeFonte) Calcular(ctx context.Context) (dto.StatsResponse, error) {
	n := f.chamadas.Add(1)
	if f.falha != nil {
		return dto.StatsResponse{}, f.falha
	}
	return dto.StatsResponse{TotalChapas: n, AtualizadoEm: time.Now()}, nil
}

func logTeste() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// Uma rajada de notificações colapsa em UMA releitura após o silêncio.
func TestRun_RajadaColapsaEmUmaReleitura(t *testing.T) {
	fonte := &fakeFonte{}
	r := refresher.New(fonte, logTeste(), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventos := make(chan struct{}, 8)
	done := make(chan struct{})
	go func() {
		r.Run(ctx, eventos)
		close(done)
	}()

	for i := 0; i < 5; i++ {
		eventos <- struct{}{}
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return fonte.chamadas.Load() == 1
	}, time.Second, 10*time.Millisecond, "a rajada deve virar exatamente uma releitura")

	// Silêncio prolongado não dispara releituras extras.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int64(1), fonte.chamadas.Load())

	snapshot, ok := r.Snapshot()
	require.True(t, ok)
	assert.Equal(t, int64(1), snapshot.TotalChapas)

	cancel()
	<-done
}

// Notificações separadas por silêncio geram uma releitura cada.
func TestRun_EventosEspacadosReleemCadaVez(t *testing.T) {
	fonte := &fakeFonte{}
	r := refresher.New(fonte, logTeste(), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventos := make(chan struct{}, 1)
	go r.Run(ctx, eventos)

	eventos <- struct{}{}
	require.Eventually(t, func() bool { return fonte.chamadas.Load() == 1 }, time.Second, 5*time.Millisecond)

	eventos <- struct{}{}
	require.Eventually(t, func() bool { return fonte.chamadas.Load() == 2 }, time.Second, 5*time.Millisecond)
}

// Fechar o canal de eventos encerra o loop.
func TestRun_CanalFechadoEncerra(t *testing.T) {
	r := refresher.New(&fakeFonte{}, logTeste(), 20*time.Millisecond)

	eventos := make(chan struct{})
	done := make(chan struct{})
	go func() {
		r.Run(context.Background(), eventos)
		close(done)
	}()
	close(eventos)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run deveria encerrar quando o canal fecha")
	}
}

// Falha na releitura não publica snapshot.
func TestAtualizar_FalhaNaoPublicaSnapshot(t *testing.T) {
	fonte := &fakeFonte{falha: errors.New("banco fora do ar")}
	r := refresher.New(fonte, logTeste(), 20*time.Millisecond)

	err := r.Atualizar(context.Background())
	require.Error(t, err)

	_, ok := r.Snapshot()
	assert.False(t, ok, "snapshot não pode existir após falha")
}
