package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/analytics"
)

// DashboardHandler cartões de resumo do painel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do painel (vendas do dia e do mês, abates aguardando, contas pendentes)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
