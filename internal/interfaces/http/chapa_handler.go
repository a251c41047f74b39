package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/domain/entity"
)

// ChapaHandler trata o cadastro de chapas (protegido).
type ChapaHandler struct {
	uc *estoque.ChapaUseCase
}

// NewChapaHandler constrói o handler.
func NewChapaHandler(uc *estoque.ChapaUseCase) *ChapaHandler {
	return &ChapaHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar chapa
// @Tags         chapas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarChapaRequest  true  "Dados da chapa"
// @Success      201   {object}  dto.ChapaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chapas [post]
func (h *ChapaHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarChapaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	chapa, err := h.uc.Criar(c.UserContext(), GetRole(c), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toChapaResponse(chapa))
}

// List godoc
// @Summary      Listar chapas
// @Tags         chapas
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "Filtro por código ou descrição"
// @Success      200    {array}  dto.ChapaResponse
// @Router       /api/chapas [get]
func (h *ChapaHandler) List(c *fiber.Ctx) error {
	chapas, err := h.uc.Listar(c.UserContext(), c.Query("busca"))
	if err != nil {
		return respostaErro(c, err)
	}
	out := make([]dto.ChapaResponse, 0, len(chapas))
	for _, chapa := range chapas {
		out = append(out, toChapaResponse(chapa))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir chapa (e todo o seu histórico)
// @Tags         chapas
// @Security     Bearer
// @Param        id  path  string  true  "ID da chapa"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chapas/{id} [delete]
func (h *ChapaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	if err := h.uc.Excluir(c.UserContext(), GetRole(c), id); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toChapaResponse(c *entity.Chapa) dto.ChapaResponse {
	return dto.ChapaResponse{
		ID:          c.ID,
		Codigo:      c.Codigo,
		Descricao:   c.Descricao,
		Espessura:   c.Espessura,
		Largura:     c.Largura,
		Comprimento: c.Comprimento,
		Unidade:     c.Unidade,
		Localizacao: c.Localizacao,
		Quantidade:  c.Quantidade,
		Peso:        c.Peso,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
