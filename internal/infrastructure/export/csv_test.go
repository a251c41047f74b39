package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvr/estoque-chapas/internal/application/relatorio"
	"github.com/matheusvr/estoque-chapas/internal/infrastructure/export"
)

func registrosEstoque() []relatorio.Registro {
	return []relatorio.Registro{
		{
			{Coluna: relatorio.ColCodigo, Valor: "CH-001"},
			{Coluna: relatorio.ColDescricao, Valor: "Chapa A36"},
			{Coluna: relatorio.ColQuantidade, Valor: "10"},
			{Coluna: relatorio.ColPesoTotal, Valor: "864.00"},
		},
		{
			{Coluna: relatorio.ColCodigo, Valor: "CH-002"},
			{Coluna: relatorio.ColDescricao, Valor: "Chapa Xadrez"},
			{Coluna: relatorio.ColQuantidade, Valor: "3"},
			{Coluna: relatorio.ColPesoTotal, Valor: "120.50"},
		},
	}
}

// O CSV é a junção literal por vírgula: cabeçalho da primeira linha + uma
// linha por registro, sem aspas nem escape.
func TestCSVRenderer_JuncaoLiteral(t *testing.T) {
	r := export.NewCSVRenderer()

	out, err := r.Render("Estoque de Chapas", registrosEstoque())
	require.NoError(t, err)

	linhas := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, linhas, 3)
	assert.Equal(t, "Código,Descrição,Quantidade,Peso Total (kg)", linhas[0])
	assert.Equal(t, "CH-001,Chapa A36,10,864.00", linhas[1])
	assert.Equal(t, "CH-002,Chapa Xadrez,3,120.50", linhas[2])
}

// Valores com vírgula embutida saem sem escape. O desalinhamento de colunas
// é assumido pelo formato.
func TestCSVRenderer_VirgulaEmbutidaSemEscape(t *testing.T) {
	r := export.NewCSVRenderer()

	out, err := r.Render("", []relatorio.Registro{{
		{Coluna: relatorio.ColCodigo, Valor: "CH-003"},
		{Coluna: relatorio.ColDescricao, Valor: "Chapa Lisa, galvanizada"},
	}})
	require.NoError(t, err)

	assert.Contains(t, string(out), "CH-003,Chapa Lisa, galvanizada")
	assert.NotContains(t, string(out), `"`)
}

func TestCSVRenderer_Metadados(t *testing.T) {
	r := export.NewCSVRenderer()
	assert.Equal(t, "csv", r.Extensao())
	assert.Equal(t, "text/csv; charset=utf-8", r.ContentType())
}
