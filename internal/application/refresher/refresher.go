// Package refresher mantém um snapshot dos contadores do painel, atualizado
// em reação às notificações de mudança vindas do banco.
package refresher

import (
	"context"
	"sync"
	"time"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/pkg/logger"
)

// DebouncePadrao agrupa rajadas de notificações em uma única releitura.
const DebouncePadrao = 250 * time.Millisecond

// Fonte recalcula os contadores a partir do banco.
type Fonte interface {
	Calcular(ctx context.Context) (dto.StatsResponse, error)
}

// Refresher consome um canal de notificações e refaz a consulta completa dos
// contadores após um intervalo de silêncio (debounce de borda final). O
// payload da notificação é ignorado de propósito: a releitura é sempre
// integral, nunca um patch incremental.
type Refresher struct {
	fonte    Fonte
	log      *logger.Logger
	debounce time.Duration

	mu       sync.RWMutex
	snapshot dto.StatsResponse
	pronto   bool
}

func New(fonte Fonte, log *logger.Logger, debounce time.Duration) *Refresher {
	if debounce <= 0 {
		debounce = DebouncePadrao
	}
	return &Refresher{fonte: fonte, log: log, debounce: debounce}
}

// Snapshot devolve o último resultado calculado. O booleano indica se já
// houve ao menos uma leitura bem sucedida.
func (r *Refresher) Snapshot() (dto.StatsResponse, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot, r.pronto
}

// Atualizar força uma releitura imediata, fora do ciclo de notificações.
// Usada na partida para preencher o snapshot inicial.
func (r *Refresher) Atualizar(ctx context.Context) error {
	stats, err := r.fonte.Calcular(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("refresher: falha ao recalcular contadores")
		return err
	}
	r.mu.Lock()
	r.snapshot = stats
	r.pronto = true
	r.mu.Unlock()
	return nil
}

// Run consome eventos até o contexto encerrar ou o canal fechar. Cada evento
// rearma o temporizador; a releitura acontece só quando a rajada cessa.
func (r *Refresher) Run(ctx context.Context, eventos <-chan struct{}) {
	timer := time.NewTimer(r.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	armado := false

	for {
		select {
		case <-ctx.Done():
			if armado {
				timer.Stop()
			}
			return
		case _, ok := <-eventos:
			if !ok {
				if armado {
					timer.Stop()
				}
				return
			}
			if armado && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(r.debounce)
			armado = true
		case <-timer.C:
			armado = false
			if err := r.Atualizar(ctx); err == nil {
				r.log.Debug().Msg("refresher: snapshot atualizado")
			}
		}
	}
}
