package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/nfe"
	"github.com/frigosul/frigosul-api/internal/application/vendas"
)

// VendaHandler vendas com baixa de estoque e emissão de NF-e.
type VendaHandler struct {
	uc    *vendas.CreateVendaUseCase
	nfeUC *nfe.EmitirNFeUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *vendas.CreateVendaUseCase, nfeUC *nfe.EmitirNFeUseCase) *VendaHandler {
	return &VendaHandler{uc: uc, nfeUC: nfeUC}
}

// Create godoc
// @Summary      Registrar venda (baixa estoque na mesma transação)
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendaRequest  true  "Cliente e itens"
// @Success      201   {object}  dto.VendaResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendaRequest
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
// @Summary      Obter venda por ID
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *VendaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar vendas
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.VendaResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Cancelar godoc
// @Summary      Cancelar venda (devolve estoque; bloqueado com nota autorizada)
// @Tags         vendas
// @Security     Bearer
// @Param        id  path  string  true  "ID da venda"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/cancelar [post]
func (h *VendaHandler) Cancelar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Cancelar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EmitirNFe godoc
// @Summary      Emitir NF-e da venda (gera, assina e transmite; retomável por etapa)
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.EmitirNFeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/nfe [post]
func (h *VendaHandler) EmitirNFe(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	out, err := h.nfeUC.Emitir(c.Context(), id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
