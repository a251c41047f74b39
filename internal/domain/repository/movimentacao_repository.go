package repository

import (
	"time"

	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
)

// MovimentacaoRepository define o porto de persistência do ledger de movimentações.
// Registros são imutáveis: não há Update; Delete acontece só em cascata da chapa.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	// ListDetalhadas devolve as movimentações com o join de chapa (código,
	// descrição, agregado atual) e usuário (nome), ordenadas por created_at
	// descendente, dentro do intervalo [de, ate] (nil = sem limite) e até limit linhas.
	ListDetalhadas(de, ate *time.Time, limit int) ([]*entity.MovimentacaoDetalhada, error)
	// SomaQuantidadePorTipo soma as quantidades movimentadas de um tipo a partir de `desde`.
	SomaQuantidadePorTipo(tipo string, desde time.Time) (int64, error)
	// DeleteByChapa remove o histórico de uma chapa (cascata da exclusão).
	DeleteByChapa(chapaID string) error
}
