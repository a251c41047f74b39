package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matheusvr/estoque-chapas/internal/application/relatorio"
)

// XLSXRenderer emite uma planilha de aba única, nomeada a partir do título do
// relatório (truncado ao limite de 31 caracteres do Excel).
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

func (r *XLSXRenderer) Extensao() string { return "xlsx" }
func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *XLSXRenderer) Render(titulo string, registros []relatorio.Registro) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if nome := nomeAba(titulo); nome != "" {
		if err := f.SetSheetName(sheet, nome); err != nil {
			return nil, fmt.Errorf("xlsx: renomear aba: %w", err)
		}
		sheet = nome
	}

	header := registros[0].Colunas()
	linha := make([]interface{}, len(header))
	for i, h := range header {
		linha[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &linha); err != nil {
		return nil, fmt.Errorf("xlsx: cabeçalho: %w", err)
	}

	for i, reg := range registros {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: célula: %w", err)
		}
		valores := reg.Valores()
		linha := make([]interface{}, len(valores))
		for j, v := range valores {
			linha[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &linha); err != nil {
			return nil, fmt.Errorf("xlsx: linha %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// nomeAba ajusta o título aos limites de nome de aba do Excel: no máximo 31
// caracteres e sem os caracteres reservados.
func nomeAba(titulo string) string {
	out := make([]rune, 0, len(titulo))
	for _, c := range titulo {
		switch c {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		out = append(out, c)
		if len(out) == 31 {
			break
		}
	}
	return string(out)
}
