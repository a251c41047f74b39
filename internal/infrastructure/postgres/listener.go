package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matheusvr/estoque-chapas/pkg/logger"
)

// CanalMudancas é o canal NOTIFY disparado pelos triggers de chapas e
// movimentações (ver migrations).
const CanalMudancas = "estoque_mudancas"

// Listener mantém uma conexão dedicada em LISTEN e repassa cada NOTIFY como
// um evento vazio. O payload é descartado: quem consome refaz a leitura
// completa, nunca aplica um patch.
type Listener struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewListener(pool *pgxpool.Pool, log *logger.Logger) *Listener {
	return &Listener{pool: pool, log: log}
}

// Run escuta o canal até o contexto encerrar, reconectando com backoff fixo
// quando a conexão cai. Fecha eventos ao sair.
func (l *Listener) Run(ctx context.Context, eventos chan<- struct{}) {
	defer close(eventos)

	for {
		if err := l.escutar(ctx, eventos); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.log.Warn().Err(err).Msg("listener: conexão caiu, reconectando")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (l *Listener) escutar(ctx context.Context, eventos chan<- struct{}) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+CanalMudancas); err != nil {
		return err
	}
	l.log.Info().Str("canal", CanalMudancas).Msg("listener: escutando notificações")

	for {
		notif, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		l.log.Debug().Str("payload", notif.Payload).Msg("listener: notificação recebida")
		select {
		case eventos <- struct{}{}:
		default:
			// Consumidor atrasado: a releitura pendente já captura esta mudança.
		}
	}
}
