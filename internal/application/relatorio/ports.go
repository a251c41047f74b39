package relatorio

// Formato identifica o encoder de saída do relatório.
type Formato string

const (
	FormatoCSV  Formato = "csv"
	FormatoXLSX Formato = "xlsx"
	FormatoPDF  Formato = "pdf"
)

// Renderer codifica um conjunto de registros em um formato de arquivo.
type Renderer interface {
	// Render produz o arquivo. registros nunca é vazio; o caso sem dados é
	// resolvido antes, no caso de uso.
	Render(titulo string, registros []Registro) ([]byte, error)
	Extensao() string
	ContentType() string
}
