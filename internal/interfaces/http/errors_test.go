package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/domain"
)

func respostaPara(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/erro", func(c *fiber.Ctx) error {
		return respostaErro(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/erro", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespostaErro_MapeamentoDosErrosDeDominio(t *testing.T) {
	casos := []struct {
		nome   string
		err    error
		status int
		code   string
	}{
		{"entrada inválida", domain.ErrEntradaInvalida, http.StatusBadRequest, "VALIDATION"},
		{"entrada inválida embrulhada", fmt.Errorf("%w: campo x", domain.ErrEntradaInvalida), http.StatusBadRequest, "VALIDATION"},
		{"não autorizado", domain.ErrNaoAutorizado, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"acesso negado", domain.ErrAcessoNegado, http.StatusForbidden, "FORBIDDEN"},
		{"não encontrado", domain.ErrNaoEncontrado, http.StatusNotFound, "NOT_FOUND"},
		{"email duplicado", domain.ErrEmailJaCadastrado, http.StatusConflict, "EMAIL_EXISTS"},
		{"registro duplicado", domain.ErrDuplicado, http.StatusConflict, "DUPLICATE"},
		{"reconciliação", fmt.Errorf("%w: update falhou", domain.ErrReconciliacao), http.StatusInternalServerError, "RECONCILIATION"},
		{"erro genérico", errors.New("qualquer coisa"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			status, body := respostaPara(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

// Estoque insuficiente devolve 409 com a quantidade disponível no corpo.
func TestRespostaErro_EstoqueInsuficienteComDisponivel(t *testing.T) {
	status, body := respostaPara(t, &domain.EstoqueInsuficienteError{Disponivel: 5})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Disponivel)
	assert.Equal(t, int64(5), *body.Disponivel)
}
