package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "entrada" // adição ao estoque
	MovimentacaoSaida   = "saida"   // retirada do estoque
)

// TipoValido informa se o tipo de movimentação é conhecido.
func TipoValido(tipo string) bool {
	return tipo == MovimentacaoEntrada || tipo == MovimentacaoSaida
}

// Movimentacao é um registro imutável do ledger: uma entrada ou saída de
// quantidade contra uma Chapa. Nunca é alterada depois de criada; só é
// removida em cascata quando a chapa dona é excluída.
type Movimentacao struct {
	ID         string
	ChapaID    string
	UsuarioID  string
	Tipo       string // entrada | saida
	Quantidade int64  // sempre > 0; o sinal vem do Tipo
	Observacao string // texto livre, opcional
	CreatedAt  time.Time
}

// MovimentacaoDetalhada é a linha de leitura do histórico: a movimentação
// enriquecida com o código/descrição da chapa e o nome do usuário (join).
type MovimentacaoDetalhada struct {
	Movimentacao
	ChapaCodigo     string
	ChapaDescricao  string
	ChapaQuantidade int64           // agregado atual da chapa, usado para derivar o peso médio exibido
	ChapaPeso       decimal.Decimal // peso total atual da chapa (kg)
	UsuarioNome     string
}
