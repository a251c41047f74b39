package estoque

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/domain"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	domestoque "github.com/matheusvr/estoque-chapas/internal/domain/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

// ChapaUseCase casos de uso do cadastro de chapas: criação (com os dois modos
// de peso), listagem com busca e exclusão em cascata.
type ChapaUseCase struct {
	chapaRepo repository.ChapaRepository
	txRunner  TxRunner
}

// NewChapaUseCase constrói o caso de uso.
func NewChapaUseCase(chapaRepo repository.ChapaRepository, txRunner TxRunner) *ChapaUseCase {
	return &ChapaUseCase{chapaRepo: chapaRepo, txRunner: txRunner}
}

// Criar cadastra uma chapa nova. O peso unitário vem do valor explícito do
// request ou, na ausência dele, da fórmula dimensional, nunca de uma
// combinação dos dois. O agregado inicial é peso unitário × quantidade.
func (uc *ChapaUseCase) Criar(ctx context.Context, role string, in dto.CriarChapaRequest) (*entity.Chapa, error) {
	if !domain.PodeExecutar(role, domain.OpCriarChapa) {
		return nil, domain.ErrAcessoNegado
	}
	if strings.TrimSpace(in.Codigo) == "" || strings.TrimSpace(in.Descricao) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if !in.Espessura.IsPositive() || !in.Largura.IsPositive() || !in.Comprimento.IsPositive() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Quantidade < 0 {
		return nil, domain.ErrEntradaInvalida
	}

	pesoUnitario, err := uc.resolverPesoUnitario(in)
	if err != nil {
		return nil, err
	}

	unidade := in.Unidade
	if unidade == "" {
		unidade = "un"
	}

	now := time.Now()
	chapa := &entity.Chapa{
		ID:          uuid.New().String(),
		Codigo:      strings.TrimSpace(in.Codigo),
		Descricao:   strings.TrimSpace(in.Descricao),
		Espessura:   in.Espessura,
		Largura:     in.Largura,
		Comprimento: in.Comprimento,
		Unidade:     unidade,
		Localizacao: strings.TrimSpace(in.Localizacao),
		Quantidade:  in.Quantidade,
		Peso:        domestoque.PesoInicial(pesoUnitario, in.Quantidade),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.chapaRepo.Create(chapa); err != nil {
		return nil, err
	}
	return chapa, nil
}

// resolverPesoUnitario escolhe entre o peso explícito e o derivado. Os modos
// são exclusivos: peso informado dispensa a fórmula.
func (uc *ChapaUseCase) resolverPesoUnitario(in dto.CriarChapaRequest) (decimal.Decimal, error) {
	if in.PesoUnitario != nil {
		if !in.PesoUnitario.IsPositive() {
			return decimal.Zero, domain.ErrEntradaInvalida
		}
		return *in.PesoUnitario, nil
	}
	return domestoque.PesoUnitarioPorDimensoes(in.Espessura, in.Largura, in.Comprimento)
}

// Listar devolve as chapas ordenadas por código, filtradas pela busca
// (código ou descrição, sem diferenciar caixa nem acentos).
func (uc *ChapaUseCase) Listar(ctx context.Context, busca string) ([]*entity.Chapa, error) {
	chapas, err := uc.chapaRepo.List()
	if err != nil {
		return nil, err
	}
	termo := normalizar(busca)
	if termo == "" {
		return chapas, nil
	}
	filtradas := make([]*entity.Chapa, 0, len(chapas))
	for _, c := range chapas {
		if strings.Contains(normalizar(c.Codigo), termo) || strings.Contains(normalizar(c.Descricao), termo) {
			filtradas = append(filtradas, c)
		}
	}
	return filtradas, nil
}

// Excluir remove a chapa e, em cascata e na mesma transação, todo o seu
// histórico de movimentações. A exclusão é permanente.
func (uc *ChapaUseCase) Excluir(ctx context.Context, role, id string) error {
	if !domain.PodeExecutar(role, domain.OpExcluirChapa) {
		return domain.ErrAcessoNegado
	}
	chapa, err := uc.chapaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if chapa == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.txRunner.Run(ctx, func(
		chapaRepo repository.ChapaRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		if err := movRepo.DeleteByChapa(id); err != nil {
			return err
		}
		return chapaRepo.Delete(id)
	})
}

// normalizar baixa a caixa e remove marcas diacríticas ("Descrição" ≡ "descricao").
func normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	limpo, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return limpo
}
