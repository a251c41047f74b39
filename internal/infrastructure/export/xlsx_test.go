package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/matheusvr/estoque-chapas/internal/infrastructure/export"
)

// A planilha gerada deve reabrir com a aba nomeada pelo título e as células
// na ordem das colunas.
func TestXLSXRenderer_ConteudoRelido(t *testing.T) {
	r := export.NewXLSXRenderer()

	out, err := r.Render("Estoque de Chapas", registrosEstoque())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Contains(t, f.GetSheetList(), "Estoque de Chapas")

	rows, err := f.GetRows("Estoque de Chapas")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Código", "Descrição", "Quantidade", "Peso Total (kg)"}, rows[0])
	assert.Equal(t, []string{"CH-001", "Chapa A36", "10", "864.00"}, rows[1])
	assert.Equal(t, []string{"CH-002", "Chapa Xadrez", "3", "120.50"}, rows[2])
}

// Títulos longos ou com caracteres reservados são ajustados ao limite de
// nome de aba do Excel.
func TestXLSXRenderer_NomeDeAbaAjustado(t *testing.T) {
	r := export.NewXLSXRenderer()

	out, err := r.Render("Relatório de Movimentações - Período: SEMANA", registrosEstoque())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	abas := f.GetSheetList()
	require.Len(t, abas, 1)
	assert.LessOrEqual(t, len([]rune(abas[0])), 31)
	assert.NotContains(t, abas[0], ":")
}
