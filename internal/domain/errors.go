package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado       = errors.New("recurso não encontrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrNaoAutorizado       = errors.New("não autorizado")
	ErrAcessoNegado        = errors.New("acesso negado")
	ErrEmailJaCadastrado   = errors.New("o email já está cadastrado")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")

	// ErrReconciliacao indica que o registro da movimentação foi gravado mas a
	// atualização do agregado da chapa falhou: ledger e agregado divergiram.
	// Não é recuperável localmente; o cliente deve recarregar e tentar de novo.
	ErrReconciliacao = errors.New("falha de reconciliação entre movimentação e estoque")
)

// EstoqueInsuficienteError carrega a quantidade disponível para exibição.
type EstoqueInsuficienteError struct {
	Disponivel int64
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente: apenas %d unidades disponíveis", e.Disponivel)
}

// Unwrap permite errors.Is(err, ErrEstoqueInsuficiente).
func (e *EstoqueInsuficienteError) Unwrap() error { return ErrEstoqueInsuficiente }
