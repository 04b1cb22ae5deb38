package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/metas"
)

// MetaHandler metas de rendimento e reconciliação por abate.
type MetaHandler struct {
	metaUC       *metas.MetaUseCase
	rendimentoUC *metas.RendimentoUseCase
}

// NewMetaHandler constrói o handler.
func NewMetaHandler(metaUC *metas.MetaUseCase, rendimentoUC *metas.RendimentoUseCase) *MetaHandler {
	return &MetaHandler{metaUC: metaUC, rendimentoUC: rendimentoUC}
}

// Create godoc
// @Summary      Criar meta de rendimento (uma ativa por produto)
// @Tags         metas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMetaRequest  true  "produto_id, meta_por_animal"
// @Success      201   {object}  dto.MetaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/metas [post]
func (h *MetaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMetaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.metaUC.Create(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar metas ativas
// @Tags         metas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MetaResponse
// @Router       /api/metas [get]
func (h *MetaHandler) List(c *fiber.Ctx) error {
	out, err := h.metaUC.ListAtivas(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar meta por animal
// @Tags         metas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da meta"
// @Param        body  body  dto.CreateMetaRequest  true  "meta_por_animal"
// @Success      200   {object}  dto.MetaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/metas/{id} [put]
func (h *MetaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	var in dto.CreateMetaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.metaUC.Update(c.Context(), id, in.MetaPorAnimal)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Inativar godoc
// @Summary      Inativar meta
// @Tags         metas
// @Security     Bearer
// @Param        id  path  string  true  "ID da meta"
// @Success      204
// @Router       /api/metas/{id}/inativar [post]
func (h *MetaHandler) Inativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.metaUC.Inativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reativar godoc
// @Summary      Reativar meta (falha se já existir outra ativa para o produto)
// @Tags         metas
// @Security     Bearer
// @Param        id  path  string  true  "ID da meta"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/metas/{id}/reativar [post]
func (h *MetaHandler) Reativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.metaUC.Reativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RendimentoPorAbate godoc
// @Summary      Rendimento reconciliado de um abate (meta teórica x produzido x perdas)
// @Tags         metas
// @Security     Bearer
// @Produce      json
// @Param        abateId  path  string  true  "ID do abate"
// @Success      200      {object}  dto.RendimentoAbateDTO
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/abates/{abateId}/rendimento [get]
func (h *MetaHandler) RendimentoPorAbate(c *fiber.Ctx) error {
	abateID := c.Params("abateId")
	if abateID == "" {
		return idFaltando(c)
	}
	out, err := h.rendimentoUC.PorAbate(c.Context(), abateID)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
