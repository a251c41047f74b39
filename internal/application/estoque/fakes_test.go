package estoque_test

import (
	"context"
	"sort"
	"time"

	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

// fakeChapaRepo implementação em memória de ChapaRepository para os testes.
type fakeChapaRepo struct {
	chapas      map[string]*entity.Chapa
	falhaUpdate error // injetada para simular falha na reconciliação
}

func newFakeChapaRepo(chapas ...*entity.Chapa) *fakeChapaRepo {
	m := make(map[string]*entity.Chapa, len(chapas))
	for _, c := range chapas {
		copia := *c
		m[c.ID] = &copia
	}
	return &fakeChapaRepo{chapas: m}
}

func (f *fakeChapaRepo) Create(chapa *entity.Chapa) error {
	copia := *chapa
	f.chapas[chapa.ID] = &copia
	return nil
}

func (f *fakeChapaRepo) GetByID(id string) (*entity.Chapa, error) {
	c, ok := f.chapas[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeChapaRepo) List() ([]*entity.Chapa, error) {
	out := make([]*entity.Chapa, 0, len(f.chapas))
	for _, c := range f.chapas {
		copia := *c
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (f *fakeChapaRepo) UpdateAgregado(chapa *entity.Chapa) error {
	if f.falhaUpdate != nil {
		return f.falhaUpdate
	}
	atual, ok := f.chapas[chapa.ID]
	if !ok {
		return nil
	}
	atual.Quantidade = chapa.Quantidade
	atual.Peso = chapa.Peso
	atual.UpdatedAt = chapa.UpdatedAt
	return nil
}

func (f *fakeChapaRepo) Delete(id string) error {
	delete(f.chapas, id)
	return nil
}

func (f *fakeChapaRepo) Totais() (int64, int64, error) {
	var tipos, quantidade int64
	for _, c := range f.chapas {
		tipos++
		quantidade += c.Quantidade
	}
	return tipos, quantidade, nil
}

// fakeMovRepo ledger em memória.
type fakeMovRepo struct {
	movs []*entity.Movimentacao
}

func (f *fakeMovRepo) Create(mov *entity.Movimentacao) error {
	copia := *mov
	f.movs = append(f.movs, &copia)
	return nil
}

func (f *fakeMovRepo) ListDetalhadas(de, ate *time.Time, limit int) ([]*entity.MovimentacaoDetalhada, error) {
	var out []*entity.MovimentacaoDetalhada
	for _, m := range f.movs {
		if de != nil && m.CreatedAt.Before(*de) {
			continue
		}
		if ate != nil && m.CreatedAt.After(*ate) {
			continue
		}
		out = append(out, &entity.MovimentacaoDetalhada{Movimentacao: *m})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMovRepo) SomaQuantidadePorTipo(tipo string, desde time.Time) (int64, error) {
	var soma int64
	for _, m := range f.movs {
		if m.Tipo == tipo && !m.CreatedAt.Before(desde) {
			soma += m.Quantidade
		}
	}
	return soma, nil
}

func (f *fakeMovRepo) DeleteByChapa(chapaID string) error {
	restantes := f.movs[:0]
	for _, m := range f.movs {
		if m.ChapaID != chapaID {
			restantes = append(restantes, m)
		}
	}
	f.movs = restantes
	return nil
}

// fakeTxRunner executa o callback diretamente sobre os fakes, sem transação.
type fakeTxRunner struct {
	chapaRepo *fakeChapaRepo
	movRepo   *fakeMovRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	chapaRepo repository.ChapaRepository,
	movRepo repository.MovimentacaoRepository,
) error) error {
	return fn(f.chapaRepo, f.movRepo)
}

var _ estoque.TxRunner = (*fakeTxRunner)(nil)
