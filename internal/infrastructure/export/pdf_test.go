package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvr/estoque-chapas/internal/infrastructure/export"
)

// O PDF gerado deve ser um documento válido e não vazio. O conteúdo visual
// (título, subtítulo de geração, alinhamentos) não é verificável por bytes;
// aqui garantimos só a integridade do arquivo.
func TestPDFRenderer_DocumentoValido(t *testing.T) {
	r := export.NewPDFRenderer()

	out, err := r.Render("Relatório de Movimentações - Período: HOJE", registrosEstoque())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "o arquivo deve começar com a assinatura PDF")
}

func TestPDFRenderer_Metadados(t *testing.T) {
	r := export.NewPDFRenderer()
	assert.Equal(t, "pdf", r.Extensao())
	assert.Equal(t, "application/pdf", r.ContentType())
}
