package estoque

import (
	"context"

	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Usado na exclusão de chapa para que a
// remoção do histórico e da chapa sejam atômicas.
//
// A gravação de movimentações NÃO usa TxRunner de propósito: o caminho é
// ledger primeiro, agregado depois, em escritas independentes (ver
// RegistrarMovimentacao).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		chapaRepo repository.ChapaRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}
