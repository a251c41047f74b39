package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/matheusvr/estoque-chapas/internal/domain"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

var _ repository.ChapaRepository = (*ChapaRepo)(nil)

const chapaColunas = `id, codigo, descricao, espessura, largura, comprimento, unidade, localizacao, quantidade, peso, created_at, updated_at`

// ChapaRepo implementação do porto ChapaRepository sobre PostgreSQL (usável com pool ou tx).
type ChapaRepo struct {
	q Querier
}

// NewChapaRepository constrói o adaptador de persistência de chapas. Aceita pool ou tx (Querier).
func NewChapaRepository(q Querier) *ChapaRepo {
	return &ChapaRepo{q: q}
}

// Create persiste uma chapa nova.
func (r *ChapaRepo) Create(chapa *entity.Chapa) error {
	query := `
		INSERT INTO chapas (` + chapaColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		chapa.ID, chapa.Codigo, chapa.Descricao,
		chapa.Espessura, chapa.Largura, chapa.Comprimento,
		chapa.Unidade, chapa.Localizacao, chapa.Quantidade, chapa.Peso,
		chapa.CreatedAt, chapa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert chapa: %w", err)
	}
	return nil
}

// GetByID busca uma chapa por ID. Devolve nil sem erro quando não existe.
func (r *ChapaRepo) GetByID(id string) (*entity.Chapa, error) {
	query := `SELECT ` + chapaColunas + ` FROM chapas WHERE id = $1`
	c, err := scanChapa(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chapa: %w", err)
	}
	return c, nil
}

// List devolve todas as chapas ordenadas por código.
func (r *ChapaRepo) List() ([]*entity.Chapa, error) {
	query := `SELECT ` + chapaColunas + ` FROM chapas ORDER BY codigo ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list chapas: %w", err)
	}
	defer rows.Close()

	var chapas []*entity.Chapa
	for rows.Next() {
		c, err := scanChapa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chapa: %w", err)
		}
		chapas = append(chapas, c)
	}
	return chapas, rows.Err()
}

// UpdateAgregado grava apenas quantidade, peso e updated_at. Os campos
// descritivos nunca mudam após a criação.
func (r *ChapaRepo) UpdateAgregado(chapa *entity.Chapa) error {
	query := `UPDATE chapas SET quantidade = $2, peso = $3, updated_at = $4 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		chapa.ID, chapa.Quantidade, chapa.Peso, chapa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agregado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Delete remove a chapa. O histórico sai antes, na mesma transação (TxRunner).
func (r *ChapaRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM chapas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chapa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Totais devolve o número de chapas cadastradas e a soma de quantidades em estoque.
func (r *ChapaRepo) Totais() (int64, int64, error) {
	var tipos, quantidade int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*), COALESCE(SUM(quantidade), 0) FROM chapas`,
	).Scan(&tipos, &quantidade)
	if err != nil {
		return 0, 0, fmt.Errorf("totais chapas: %w", err)
	}
	return tipos, quantidade, nil
}

func scanChapa(row pgx.Row) (*entity.Chapa, error) {
	var c entity.Chapa
	err := row.Scan(
		&c.ID, &c.Codigo, &c.Descricao,
		&c.Espessura, &c.Largura, &c.Comprimento,
		&c.Unidade, &c.Localizacao, &c.Quantidade, &c.Peso,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
