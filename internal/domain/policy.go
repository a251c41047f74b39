package domain

import "github.com/matheusvr/estoque-chapas/internal/domain/entity"

// Operacao identifica uma operação do motor de estoque para fins de autorização.
type Operacao string

const (
	OpCriarChapa       Operacao = "criar_chapa"
	OpExcluirChapa     Operacao = "excluir_chapa"
	OpRegistrarEntrada Operacao = "registrar_entrada"
	OpRegistrarSaida   Operacao = "registrar_saida"
	OpConsultar        Operacao = "consultar"
	OpExportar         Operacao = "exportar"
)

// operacoesPorRole é a tabela de capacidades checada na borda do motor.
// O controlador tem acesso total; o operador só registra saídas e lê.
var operacoesPorRole = map[string]map[Operacao]bool{
	entity.RoleControlador: {
		OpCriarChapa:       true,
		OpExcluirChapa:     true,
		OpRegistrarEntrada: true,
		OpRegistrarSaida:   true,
		OpConsultar:        true,
		OpExportar:         true,
	},
	entity.RoleOperador: {
		OpRegistrarSaida: true,
		OpConsultar:      true,
		OpExportar:       true,
	},
}

// PodeExecutar informa se o role pode executar a operação. Roles desconhecidos
// não podem nada.
func PodeExecutar(role string, op Operacao) bool {
	return operacoesPorRole[role][op]
}

// OperacaoDoTipo mapeia o tipo de movimentação para a operação correspondente.
func OperacaoDoTipo(tipo string) Operacao {
	if tipo == entity.MovimentacaoEntrada {
		return OpRegistrarEntrada
	}
	return OpRegistrarSaida
}
