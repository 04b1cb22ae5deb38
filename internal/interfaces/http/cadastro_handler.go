// Handlers dos cadastros de apoio: fornecedores, clientes e funcionários.
// Mesmo contorno CRUD nos três, com inativação em vez de exclusão física.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/usecase"
)

// FornecedorHandler CRUD de fornecedores.
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
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

func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

func (h *FornecedorHandler) Inativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Inativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FornecedorHandler) Reativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Reativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClienteHandler CRUD de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
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

func (h *ClienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

func (h *ClienteHandler) Inativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Inativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ClienteHandler) Reativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Reativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FuncionarioHandler CRUD de funcionários.
type FuncionarioHandler struct {
	uc *usecase.FuncionarioUseCase
}

// NewFuncionarioHandler constrói o handler.
func NewFuncionarioHandler(uc *usecase.FuncionarioUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc}
}

func (h *FuncionarioHandler) Create(c *fiber.Ctx) error {
	var in dto.FuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FuncionarioHandler) GetByID(c *fiber.Ctx) error {
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

func (h *FuncionarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), paginacao(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

func (h *FuncionarioHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	var in dto.FuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

func (h *FuncionarioHandler) Inativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Inativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FuncionarioHandler) Reativar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return idFaltando(c)
	}
	if err := h.uc.Reativar(c.Context(), id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
