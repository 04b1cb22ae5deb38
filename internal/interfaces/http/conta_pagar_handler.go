package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/usecase"
)

// ContaPagarHandler consulta e baixa das contas a pagar geradas pelos abates.
type ContaPagarHandler struct {
	uc *usecase.ContaPagarUseCase
}

// NewContaPagarHandler constrói o handler.
func NewContaPagarHandler(uc *usecase.ContaPagarUseCase) *ContaPagarHandler {
	return &ContaPagarHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obter conta a pagar por ID
// @Tags         contas-pagar
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.ContaPagarResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id} [get]
func (h *ContaPagarHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contas a pagar
// @Tags         contas-pagar
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pendente | pago"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.ContaPagarResponse
// @Router       /api/contas-pagar [get]
func (h *ContaPagarHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Pagar godoc
// @Summary      Dar baixa em conta pendente (irreversível)
// @Tags         contas-pagar
// @Security     Bearer
// @Param        id  path  string  true  "ID da conta"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contas-pagar/{id}/pagar [post]
func (h *ContaPagarHandler) Pagar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Pagar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
