package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/relatorios"
)

// RelatorioHandler relatório financeiro em JSON, CSV ou PDF.
type RelatorioHandler struct {
	uc *relatorios.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorios.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Financeiro godoc
// @Summary      Relatório financeiro do período
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        inicio   query  string  true   "Data inicial (YYYY-MM-DD)"
// @Param        fim      query  string  true   "Data final (YYYY-MM-DD)"
// @Param        formato  query  string  false  "json | csv | pdf"  default(json)
// @Success      200      {object}  dto.RelatorioFinanceiroDTO
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/relatorios/financeiro [get]
func (h *RelatorioHandler) Financeiro(c *fiber.Ctx) error {
	inicio, fim, err := periodoDaQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inicio e fim devem estar no formato YYYY-MM-DD"})
	}
	switch c.Query("formato", "json") {
	case "csv":
		out, err := h.uc.FinanceiroCSV(c.Context(), inicio, fim)
		if err != nil {
			return responderErro(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_financeiro.csv"`)
		return c.Send(out)
	case "pdf":
		out, err := h.uc.FinanceiroPDF(c.Context(), inicio, fim)
		if err != nil {
			return responderErro(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_financeiro.pdf"`)
		return c.Send(out)
	default:
		out, err := h.uc.Financeiro(c.Context(), inicio, fim)
		if err != nil {
			return responderErro(c, err)
		}
		return c.JSON(out)
	}
}

// periodoDaQuery lê inicio/fim (YYYY-MM-DD) e estende o fim até o último
// instante do dia, para que o filtro inclua o dia inteiro.
func periodoDaQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	inicio, err := time.Parse("2006-01-02", c.Query("inicio"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim, err := time.Parse("2006-01-02", c.Query("fim"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim = fim.Add(24*time.Hour - time.Nanosecond)
	return inicio, fim, nil
}
