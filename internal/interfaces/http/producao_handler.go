package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/producao"
)

// ProducaoHandler registro de produção vinculada a abate.
type ProducaoHandler struct {
	uc *producao.CreateProducaoUseCase
}

// NewProducaoHandler constrói o handler.
func NewProducaoHandler(uc *producao.CreateProducaoUseCase) *ProducaoHandler {
	return &ProducaoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar produção (incrementa estoque e calcula perdas na mesma transação)
// @Tags         producoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProducaoRequest  true  "Itens produzidos por abate"
// @Success      201   {object}  dto.ProducaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/producoes [post]
func (h *ProducaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProducaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter produção por ID (com lotes gerados)
// @Tags         producoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da produção"
// @Success      200  {object}  dto.ProducaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/producoes/{id} [get]
func (h *ProducaoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar produções
// @Tags         producoes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ProducaoResponse
// @Router       /api/producoes [get]
func (h *ProducaoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ListByAbate godoc
// @Summary      Listar produções de um abate
// @Tags         producoes
// @Security     Bearer
// @Produce      json
// @Param        abateId  path  string  true  "ID do abate"
// @Success      200      {array}  dto.ProducaoResponse
// @Router       /api/abates/{abateId}/producoes [get]
func (h *ProducaoHandler) ListByAbate(c *fiber.Ctx) error {
	abateID := c.Params("abateId")
	if abateID == "" {
		return idFaltando(c)
	}
	out, err := h.uc.ListByAbate(c.Context(), abateID)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cabeçalho da produção (itens são imutáveis)
// @Tags         producoes
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID da produção"
// @Param        body  body  dto.UpdateProducaoRequest  true  "Data e responsável"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/producoes/{id} [put]
func (h *ProducaoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	var in dto.UpdateProducaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.UpdateCabecalho(c.Context(), id, in); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Inativar godoc
// @Summary      Inativar produção (estoque não é revertido automaticamente)
// @Tags         producoes
// @Security     Bearer
// @Param        id  path  string  true  "ID da produção"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/producoes/{id}/inativar [post]
func (h *ProducaoHandler) Inativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Inativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
