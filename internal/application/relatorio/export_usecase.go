package relatorio

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matheusvr/estoque-chapas/internal/domain"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	"github.com/matheusvr/estoque-chapas/internal/domain/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/periodo"
	"github.com/matheusvr/estoque-chapas/internal/domain/repository"
)

// Escopo delimita quais chapas entram no relatório de estoque.
type Escopo string

const (
	// EscopoFiltrado exporta apenas as chapas que casam com a busca atual.
	EscopoFiltrado Escopo = "filtrado"
	// EscopoTodos exporta o estoque completo, ignorando a busca.
	EscopoTodos Escopo = "todos"
)

// Resultado carrega o arquivo pronto para download. Vazio (Conteudo nil)
// significa que não havia dados para exportar.
type Resultado struct {
	Conteudo    []byte
	ContentType string
	NomeArquivo string
}

// ListadorChapas lista o estoque já filtrado pela busca.
type ListadorChapas interface {
	Listar(ctx context.Context, busca string) ([]*entity.Chapa, error)
}

// ExportUseCase monta e codifica os relatórios de estoque e de histórico.
type ExportUseCase struct {
	chapas    ListadorChapas
	movRepo   repository.MovimentacaoRepository
	renderers map[Formato]Renderer
	agora     func() time.Time
}

func NewExportUseCase(
	chapas ListadorChapas,
	movRepo repository.MovimentacaoRepository,
	renderers map[Formato]Renderer,
) *ExportUseCase {
	return &ExportUseCase{
		chapas:    chapas,
		movRepo:   movRepo,
		renderers: renderers,
		agora:     time.Now,
	}
}

func (uc *ExportUseCase) renderer(formato Formato) (Renderer, error) {
	r, ok := uc.renderers[formato]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportação desconhecido: %s", domain.ErrEntradaInvalida, formato)
	}
	return r, nil
}

// ExportarHistorico gera o relatório de movimentações do período informado.
func (uc *ExportUseCase) ExportarHistorico(ctx context.Context, role string, filtro periodo.Filtro, formato Formato) (*Resultado, error) {
	if !domain.PodeExecutar(role, domain.OpExportar) {
		return nil, domain.ErrAcessoNegado
	}

	r, err := uc.renderer(formato)
	if err != nil {
		return nil, err
	}

	agora := uc.agora()
	intervalo, err := periodo.Resolver(filtro, agora)
	if err != nil {
		return nil, err
	}

	movs, err := uc.movRepo.ListDetalhadas(intervalo.Inicio, intervalo.Fim, periodo.LimiteLinhas(filtro))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentações: %w", err)
	}
	if len(movs) == 0 {
		return &Resultado{}, nil
	}

	registros := make([]Registro, 0, len(movs))
	for _, m := range movs {
		registros = append(registros, registroMovimentacao(m))
	}

	titulo := fmt.Sprintf("Relatório de Movimentações - Período: %s", strings.ToUpper(string(filtro)))
	conteudo, err := r.Render(titulo, registros)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar relatório: %w", err)
	}

	nome := fmt.Sprintf("historico_movimentacoes_%s_%s.%s", filtro, agora.Format("20060102T150405"), r.Extensao())
	return &Resultado{Conteudo: conteudo, ContentType: r.ContentType(), NomeArquivo: nome}, nil
}

// ExportarChapas gera o relatório do estoque atual. Com EscopoFiltrado a
// busca é aplicada; com EscopoTodos ela é ignorada.
func (uc *ExportUseCase) ExportarChapas(ctx context.Context, role string, formato Formato, escopo Escopo, busca string) (*Resultado, error) {
	if !domain.PodeExecutar(role, domain.OpExportar) {
		return nil, domain.ErrAcessoNegado
	}

	r, err := uc.renderer(formato)
	if err != nil {
		return nil, err
	}
	if escopo != EscopoFiltrado && escopo != EscopoTodos {
		return nil, fmt.Errorf("%w: escopo de exportação desconhecido: %s", domain.ErrEntradaInvalida, escopo)
	}
	if escopo == EscopoTodos {
		busca = ""
	}

	chapas, err := uc.chapas.Listar(ctx, busca)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar chapas: %w", err)
	}
	if len(chapas) == 0 {
		return &Resultado{}, nil
	}

	registros := make([]Registro, 0, len(chapas))
	for _, c := range chapas {
		registros = append(registros, registroChapa(c))
	}

	conteudo, err := r.Render("Estoque de Chapas", registros)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar relatório: %w", err)
	}

	nome := fmt.Sprintf("estoque_chapas_%s.%s", uc.agora().Format("20060102T150405"), r.Extensao())
	return &Resultado{Conteudo: conteudo, ContentType: r.ContentType(), NomeArquivo: nome}, nil
}

func registroChapa(c *entity.Chapa) Registro {
	return Registro{
		{ColCodigo, c.Codigo},
		{ColDescricao, c.Descricao},
		{ColDimensoes, c.Dimensoes()},
		{ColQuantidade, strconv.FormatInt(c.Quantidade, 10)},
		{ColPesoTotal, c.Peso.StringFixed(2)},
		{ColLocalizacao, c.Localizacao},
	}
}

func registroMovimentacao(m *entity.MovimentacaoDetalhada) Registro {
	sinal := "+"
	tipo := "Entrada"
	if m.Tipo == entity.MovimentacaoSaida {
		sinal = "-"
		tipo = "Saída"
	}

	peso := estoque.PesoMovimentado(entity.Chapa{
		Quantidade: m.ChapaQuantidade,
		Peso:       m.ChapaPeso,
	}, m.Quantidade)

	usuario := m.UsuarioNome
	if usuario == "" {
		usuario = "Usuário Desconhecido"
	}

	return Registro{
		{ColDataHora, m.CreatedAt.Format("02/01/2006 15:04")},
		{ColTipo, tipo},
		{ColCodigo, m.ChapaCodigo},
		{ColDescricao, m.ChapaDescricao},
		{ColQuantidade, sinal + strconv.FormatInt(m.Quantidade, 10)},
		{ColPeso, sinal + peso.StringFixed(2)},
		{ColUsuario, usuario},
	}
}
