// Package relatorio monta os dados tabulares dos relatórios e despacha a
// renderização para um dos encoders intercambiáveis (csv, xlsx, pdf).
package relatorio

// Celula é um par coluna → valor de exibição.
type Celula struct {
	Coluna string
	Valor  string
}

// Registro é uma linha ordenada do relatório. Todas as linhas de um mesmo
// relatório compartilham as colunas (na ordem) da primeira.
type Registro []Celula

// Colunas devolve os nomes de coluna na ordem do registro.
func (r Registro) Colunas() []string {
	cols := make([]string, len(r))
	for i, c := range r {
		cols[i] = c.Coluna
	}
	return cols
}

// Valores devolve os valores na ordem das colunas.
func (r Registro) Valores() []string {
	vals := make([]string, len(r))
	for i, c := range r {
		vals[i] = c.Valor
	}
	return vals
}

// Rótulos de coluna dos relatórios (idênticos aos exibidos na interface).
const (
	ColCodigo      = "Código"
	ColDescricao   = "Descrição"
	ColDimensoes   = "Dimensões (mm)"
	ColQuantidade  = "Quantidade"
	ColPesoTotal   = "Peso Total (kg)"
	ColLocalizacao = "Localização"
	ColDataHora    = "Data / Hora"
	ColTipo        = "Tipo"
	ColPeso        = "Peso (kg)"
	ColUsuario     = "Usuário"
)

// ColunaNumerica indica colunas de quantidade/peso, centralizadas no PDF.
func ColunaNumerica(nome string) bool {
	switch nome {
	case ColQuantidade, ColPeso, ColPesoTotal:
		return true
	}
	return false
}
