package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/matheusvr/estoque-chapas/internal/application/relatorio"
)

var (
	corTitulo = &props.Color{Red: 31, Green: 41, Blue: 55}
	corCinza  = &props.Color{Red: 100, Green: 100, Blue: 100}
	corLinha  = &props.Color{Red: 180, Green: 180, Blue: 180}
)

// PDFRenderer emite o relatório como tabela A4 via Maroto: título, data de
// geração e uma linha por registro. Colunas de quantidade e peso saem
// centralizadas; as textuais, alinhadas à esquerda.
type PDFRenderer struct {
	agora func() time.Time
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{agora: time.Now}
}

func (r *PDFRenderer) Extensao() string    { return "pdf" }
func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Render(titulo string, registros []relatorio.Registro) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: corTitulo, Top: 1,
			}),
		),
	))
	m.AddRows(row.New(6).Add(
		col.New(12).Add(
			text.New("Gerado em "+r.agora().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Color: corCinza,
			}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: corLinha, Thickness: 0.4}))

	colunas := registros[0].Colunas()
	larguras := largurasColunas(len(colunas))

	m.AddRows(cabecalhoTabela(colunas, larguras))
	for _, reg := range registros {
		m.AddRows(linhaTabela(reg, larguras))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// largurasColunas reparte as 12 colunas do grid do Maroto entre as colunas do
// relatório; o resto da divisão vai para as primeiras.
func largurasColunas(n int) []int {
	larguras := make([]int, n)
	base := 12 / n
	resto := 12 % n
	for i := range larguras {
		larguras[i] = base
		if i < resto {
			larguras[i]++
		}
	}
	return larguras
}

func alinhamento(coluna string) align.Type {
	if relatorio.ColunaNumerica(coluna) {
		return align.Center
	}
	return align.Left
}

func cabecalhoTabela(colunas []string, larguras []int) core.Row {
	cols := make([]core.Col, 0, len(colunas))
	for i, nome := range colunas {
		cols = append(cols, col.New(larguras[i]).Add(
			text.New(nome, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: alinhamento(nome),
				Color: corTitulo, Top: 1,
			}),
		))
	}
	return row.New(7).Add(cols...)
}

func linhaTabela(reg relatorio.Registro, larguras []int) core.Row {
	cols := make([]core.Col, 0, len(reg))
	for i, c := range reg {
		cols = append(cols, col.New(larguras[i]).Add(
			text.New(c.Valor, props.Text{
				Size: 8, Align: alinhamento(c.Coluna), Top: 1,
			}),
		))
	}
	return row.New(6).Add(cols...)
}
