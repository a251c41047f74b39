package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
	domestoque "github.com/matheusvr/estoque-chapas/internal/domain/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/periodo"
)

// MovimentacaoHandler trata o registro de movimentações e o histórico (protegido).
type MovimentacaoHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *estoque.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar entrada ou saída de estoque
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da chapa"
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "Movimentação"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK com a quantidade disponível"
// @Failure      500   {object}  dto.ErrorResponse  "RECONCILIATION quando o ledger gravou mas o agregado não"
// @Router       /api/chapas/{id}/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	chapaID := c.Params("id")
	if chapaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id da chapa obrigatório"})
	}
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	res, err := h.uc.Registrar(c.UserContext(), estoque.MovimentacaoInput{
		ChapaID:    chapaID,
		UsuarioID:  GetUserID(c),
		Role:       GetRole(c),
		Tipo:       in.Tipo,
		Quantidade: in.Quantidade,
		Observacao: in.Observacao,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	movimentacoesRegistradas.WithLabelValues(res.Mov.Tipo).Inc()

	return c.Status(fiber.StatusCreated).JSON(dto.MovimentacaoResponse{
		ID:              res.Mov.ID,
		Tipo:            res.Mov.Tipo,
		Quantidade:      res.Mov.Quantidade,
		PesoMovimentado: res.PesoMovimentado,
		Observacao:      res.Mov.Observacao,
		ChapaCodigo:     res.Chapa.Codigo,
		ChapaDescricao:  res.Chapa.Descricao,
		UsuarioNome:     GetNome(c),
		CreatedAt:       res.Mov.CreatedAt,
	})
}

// Historico godoc
// @Summary      Histórico de movimentações por período
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        periodo  query  string  false  "hoje | semana | mes | todos"  default(hoje)
// @Success      200      {array}  dto.MovimentacaoResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) Historico(c *fiber.Ctx) error {
	filtro := periodo.Filtro(c.Query("periodo", string(periodo.Hoje)))
	if !periodo.Valida(filtro) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "período desconhecido: " + string(filtro)})
	}
	movs, err := h.uc.Historico(c.UserContext(), filtro)
	if err != nil {
		return respostaErro(c, err)
	}
	out := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimentacaoResponse(m))
	}
	return c.JSON(out)
}

func toMovimentacaoResponse(m *entity.MovimentacaoDetalhada) dto.MovimentacaoResponse {
	peso := domestoque.PesoMovimentado(entity.Chapa{
		Quantidade: m.ChapaQuantidade,
		Peso:       m.ChapaPeso,
	}, m.Quantidade)

	return dto.MovimentacaoResponse{
		ID:              m.ID,
		Tipo:            m.Tipo,
		Quantidade:      m.Quantidade,
		PesoMovimentado: peso,
		Observacao:      m.Observacao,
		ChapaCodigo:     m.ChapaCodigo,
		ChapaDescricao:  m.ChapaDescricao,
		UsuarioNome:     m.UsuarioNome,
		CreatedAt:       m.CreatedAt,
	}
}
