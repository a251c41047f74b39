package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarChapaRequest body para POST /api/chapas.
// Os dois modos de criação são mutuamente exclusivos: PesoUnitario informado
// usa o valor explícito; ausente, o peso é derivado da fórmula dimensional.
type CriarChapaRequest struct {
	Codigo       string           `json:"codigo" validate:"required,min=1,max=50"`
	Descricao    string           `json:"descricao" validate:"required,min=1,max=200"`
	Espessura    decimal.Decimal  `json:"espessura"`   // mm, > 0
	Largura      decimal.Decimal  `json:"largura"`     // mm, > 0
	Comprimento  decimal.Decimal  `json:"comprimento"` // mm, > 0
	Unidade      string           `json:"unidade,omitempty"`
	Localizacao  string           `json:"localizacao,omitempty"`
	Quantidade   int64            `json:"quantidade"`
	PesoUnitario *decimal.Decimal `json:"peso_unitario,omitempty"` // kg por unidade; nil = derivar da fórmula
}

// ChapaResponse saída de uma chapa.
type ChapaResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Descricao   string          `json:"descricao"`
	Espessura   decimal.Decimal `json:"espessura"`
	Largura     decimal.Decimal `json:"largura"`
	Comprimento decimal.Decimal `json:"comprimento"`
	Unidade     string          `json:"unidade"`
	Localizacao string          `json:"localizacao,omitempty"`
	Quantidade  int64           `json:"quantidade"`
	Peso        decimal.Decimal `json:"peso"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RegistrarMovimentacaoRequest body para POST /api/chapas/:id/movimentacoes.
type RegistrarMovimentacaoRequest struct {
	Tipo       string `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade int64  `json:"quantidade" validate:"required,min=1"`
	Observacao string `json:"observacao,omitempty"`
}

// MovimentacaoResponse saída de uma linha do histórico, com o peso movimentado
// derivado do agregado atual da chapa.
type MovimentacaoResponse struct {
	ID             string          `json:"id"`
	Tipo           string          `json:"tipo"`
	Quantidade     int64           `json:"quantidade"`
	PesoMovimentado decimal.Decimal `json:"peso_movimentado"`
	Observacao     string          `json:"observacao,omitempty"`
	ChapaCodigo    string          `json:"chapa_codigo"`
	ChapaDescricao string          `json:"chapa_descricao"`
	UsuarioNome    string          `json:"usuario_nome"`
	CreatedAt      time.Time       `json:"created_at"`
}

// StatsResponse contadores do painel de estoque.
type StatsResponse struct {
	TotalChapas     int64     `json:"total_chapas"`
	TotalQuantidade int64     `json:"total_quantidade"`
	EntradasMes     int64     `json:"entradas_mes"`
	SaidasMes       int64     `json:"saidas_mes"`
	AtualizadoEm    time.Time `json:"atualizado_em"`
}
