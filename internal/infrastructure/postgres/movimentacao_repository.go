package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre PostgreSQL.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador do ledger. Aceita pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create acrescenta um registro ao ledger. Nunca há update posterior.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (id, chapa_id, usuario_id, tipo, quantidade, observacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ChapaID, mov.UsuarioID, mov.Tipo, mov.Quantidade, mov.Observacao, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// ListDetalhadas devolve as movimentações com o join de chapa e usuário,
// mais recentes primeiro, dentro do intervalo [de, ate] e até limit linhas.
// O LEFT JOIN em profiles preserva movimentações de usuários já removidos.
func (r *MovimentacaoRepo) ListDetalhadas(de, ate *time.Time, limit int) ([]*entity.MovimentacaoDetalhada, error) {
	query := `
		SELECT m.id, m.chapa_id, COALESCE(m.usuario_id::text, ''), m.tipo, m.quantidade, m.observacao, m.created_at,
		       c.codigo, c.descricao, c.quantidade, c.peso,
		       COALESCE(p.nome, '')
		FROM movimentacoes m
		JOIN chapas c ON c.id = m.chapa_id
		LEFT JOIN profiles p ON p.id = m.usuario_id
		WHERE ($1::timestamptz IS NULL OR m.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR m.created_at <= $2)
		ORDER BY m.created_at DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, de, ate, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var movs []*entity.MovimentacaoDetalhada
	for rows.Next() {
		var m entity.MovimentacaoDetalhada
		err := rows.Scan(
			&m.ID, &m.ChapaID, &m.UsuarioID, &m.Tipo, &m.Quantidade, &m.Observacao, &m.CreatedAt,
			&m.ChapaCodigo, &m.ChapaDescricao, &m.ChapaQuantidade, &m.ChapaPeso,
			&m.UsuarioNome,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		movs = append(movs, &m)
	}
	return movs, rows.Err()
}

// SomaQuantidadePorTipo soma as quantidades movimentadas de um tipo desde o instante dado.
func (r *MovimentacaoRepo) SomaQuantidadePorTipo(tipo string, desde time.Time) (int64, error) {
	var soma int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantidade), 0) FROM movimentacoes WHERE tipo = $1 AND created_at >= $2`,
		tipo, desde,
	).Scan(&soma)
	if err != nil {
		return 0, fmt.Errorf("soma movimentacoes: %w", err)
	}
	return soma, nil
}

// DeleteByChapa remove o histórico de uma chapa. Só é chamado na cascata de
// exclusão, dentro da mesma transação que apaga a chapa.
func (r *MovimentacaoRepo) DeleteByChapa(chapaID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movimentacoes WHERE chapa_id = $1`, chapaID)
	if err != nil {
		return fmt.Errorf("delete movimentacoes da chapa: %w", err)
	}
	return nil
}
