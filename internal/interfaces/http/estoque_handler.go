package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/estoque"
)

// EstoqueHandler movimentações manuais de estoque.
type EstoqueHandler struct {
	uc *estoque.RegistrarMovimentacaoUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.RegistrarMovimentacaoUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimentação manual (entrada ou saída)
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "Movimentação"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentacoes [post]
func (h *EstoqueHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Registrar(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimentações
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produto_id  query  string  false  "Filtro por produto"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.MovimentacaoResponse
// @Router       /api/estoque/movimentacoes [get]
func (h *EstoqueHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("produto_id"), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
