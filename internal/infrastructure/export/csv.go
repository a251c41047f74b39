// Package export implementa os renderers de relatório (csv, xlsx, pdf) da
// camada de aplicação.
package export

import (
	"bytes"
	"strings"

	"github.com/matheusvr/estoque-chapas/internal/application/relatorio"
)

// CSVRenderer emite as linhas como junção literal por vírgula, sem aspas nem
// escape. Valores com vírgula embutida quebram o alinhamento das colunas; o
// formato é mantido assim por compatibilidade com os arquivos já em uso.
type CSVRenderer struct{}

func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

func (r *CSVRenderer) Extensao() string    { return "csv" }
func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (r *CSVRenderer) Render(_ string, registros []relatorio.Registro) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(registros[0].Colunas(), ","))
	buf.WriteByte('\n')
	for _, reg := range registros {
		buf.WriteString(strings.Join(reg.Valores(), ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
