package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/abate"
	"github.com/frigosul/frigosul-api/internal/application/dto"
)

// AbateHandler registro e ciclo de vida dos lotes de abate.
type AbateHandler struct {
	uc *abate.CreateAbateUseCase
}

// NewAbateHandler constrói o handler.
func NewAbateHandler(uc *abate.CreateAbateUseCase) *AbateHandler {
	return &AbateHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar abate (gera conta a pagar na mesma transação)
// @Tags         abates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAbateRequest  true  "Dados do abate"
// @Success      201   {object}  dto.AbateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/abates [post]
func (h *AbateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAbateRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), GetNome(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter abate por ID
// @Tags         abates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do abate"
// @Success      200  {object}  dto.AbateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/abates/{id} [get]
func (h *AbateHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar abates
// @Tags         abates
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro por status"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.AbateResponse
// @Router       /api/abates [get]
func (h *AbateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar abate (recalcula custo total)
// @Tags         abates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do abate"
// @Param        body  body  dto.CreateAbateRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.AbateResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/abates/{id} [put]
func (h *AbateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	var in dto.CreateAbateRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Cancelar godoc
// @Summary      Cancelar abate
// @Tags         abates
// @Security     Bearer
// @Param        id  path  string  true  "ID do abate"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/abates/{id}/cancelar [post]
func (h *AbateHandler) Cancelar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Cancelar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reativar godoc
// @Summary      Reativar abate cancelado
// @Tags         abates
// @Security     Bearer
// @Param        id  path  string  true  "ID do abate"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/abates/{id}/reativar [post]
func (h *AbateHandler) Reativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Reativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Finalizar godoc
// @Summary      Finalizar abate em processamento
// @Tags         abates
// @Security     Bearer
// @Param        id  path  string  true  "ID do abate"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/abates/{id}/finalizar [post]
func (h *AbateHandler) Finalizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Finalizar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
