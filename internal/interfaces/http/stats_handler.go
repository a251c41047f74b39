package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matheusvr/estoque-chapas/internal/application/estoque"
	"github.com/matheusvr/estoque-chapas/internal/application/refresher"
)

// StatsHandler serve os contadores do painel (protegido). Responde do
// snapshot do refresher quando disponível; sem snapshot (partida fria ou
// listener fora do ar) consulta o banco diretamente.
type StatsHandler struct {
	refresher *refresher.Refresher
	uc        *estoque.StatsUseCase
}

// NewStatsHandler constrói o handler.
func NewStatsHandler(r *refresher.Refresher, uc *estoque.StatsUseCase) *StatsHandler {
	return &StatsHandler{refresher: r, uc: uc}
}

// Get godoc
// @Summary      Contadores do painel de estoque
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/estoque/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	if snapshot, ok := h.refresher.Snapshot(); ok {
		return c.JSON(snapshot)
	}
	stats, err := h.uc.Calcular(c.UserContext())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(stats)
}
