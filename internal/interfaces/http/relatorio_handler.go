package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/matheusvr/estoque-chapas/internal/application/dto"
	"github.com/matheusvr/estoque-chapas/internal/application/relatorio"
	"github.com/matheusvr/estoque-chapas/internal/domain/periodo"
)

// RelatorioHandler trata os downloads de relatório (protegido).
type RelatorioHandler struct {
	uc *relatorio.ExportUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.ExportUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Historico godoc
// @Summary      Exportar histórico de movimentações
// @Tags         relatorios
// @Security     Bearer
// @Produce      octet-stream
// @Param        periodo  query  string  false  "hoje | semana | mes | todos"  default(hoje)
// @Param        formato  query  string  false  "csv | xlsx | pdf"             default(csv)
// @Success      200  {file}  file
// @Success      204  "Sem movimentações no período"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/movimentacoes [get]
func (h *RelatorioHandler) Historico(c *fiber.Ctx) error {
	filtro := periodo.Filtro(c.Query("periodo", string(periodo.Hoje)))
	if !periodo.Valida(filtro) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "período desconhecido: " + string(filtro)})
	}
	formato := relatorio.Formato(c.Query("formato", string(relatorio.FormatoCSV)))

	res, err := h.uc.ExportarHistorico(c.UserContext(), GetRole(c), filtro, formato)
	if err != nil {
		return respostaErro(c, err)
	}
	return h.enviar(c, formato, res)
}

// Chapas godoc
// @Summary      Exportar estoque atual de chapas
// @Tags         relatorios
// @Security     Bearer
// @Produce      octet-stream
// @Param        formato  query  string  false  "csv | xlsx | pdf"      default(csv)
// @Param        escopo   query  string  false  "filtrado | todos"      default(todos)
// @Param        busca    query  string  false  "Filtro aplicado quando escopo=filtrado"
// @Success      200  {file}  file
// @Success      204  "Estoque vazio"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/chapas [get]
func (h *RelatorioHandler) Chapas(c *fiber.Ctx) error {
	formato := relatorio.Formato(c.Query("formato", string(relatorio.FormatoCSV)))
	escopo := relatorio.Escopo(c.Query("escopo", string(relatorio.EscopoTodos)))

	res, err := h.uc.ExportarChapas(c.UserContext(), GetRole(c), formato, escopo, c.Query("busca"))
	if err != nil {
		return respostaErro(c, err)
	}
	return h.enviar(c, formato, res)
}

// enviar descarrega o arquivo gerado; sem dados é um no-op (204, nenhum arquivo).
func (h *RelatorioHandler) enviar(c *fiber.Ctx, formato relatorio.Formato, res *relatorio.Resultado) error {
	if len(res.Conteudo) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	relatoriosExportados.WithLabelValues(string(formato)).Inc()
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.NomeArquivo))
	return c.Send(res.Conteudo)
}
