package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigosul/frigosul-api/internal/application/dto"
	"github.com/frigosul/frigosul-api/internal/application/usecase"
	"github.com/frigosul/frigosul-api/internal/domain/entity"
)

// EmpresaHandler configuração do emitente (registro único).
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler constrói o handler.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Get godoc
// @Summary      Obter dados do emitente
// @Tags         empresa
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa [get]
func (h *EmpresaHandler) Get(c *fiber.Ctx) error {
	e, err := h.uc.Get(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	if e == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "emitente não configurado"})
	}
	return c.JSON(empresaToResponse(e))
}

// Upsert godoc
// @Summary      Gravar dados do emitente
// @Tags         empresa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmpresaRequest  true  "Razão social, CNPJ, endereço"
// @Success      200   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empresa [put]
func (h *EmpresaHandler) Upsert(c *fiber.Ctx) error {
	var in dto.EmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	atual, err := h.uc.Get(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	e := &entity.Empresa{
		RazaoSocial:       in.RazaoSocial,
		NomeFantasia:      in.NomeFantasia,
		CNPJ:              in.CNPJ,
		InscricaoEstadual: in.InscricaoEstadual,
		Endereco:          in.Endereco,
		Cidade:            in.Cidade,
		UF:                in.UF,
		CodigoUF:          in.CodigoUF,
		Telefone:          in.Telefone,
		Email:             in.Email,
	}
	if atual != nil {
		e.ID = atual.ID
		e.CreatedAt = atual.CreatedAt
	}
	out, err := h.uc.Upsert(c.Context(), e)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(empresaToResponse(out))
}

func empresaToResponse(e *entity.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:                e.ID,
		RazaoSocial:       e.RazaoSocial,
		NomeFantasia:      e.NomeFantasia,
		CNPJ:              e.CNPJ,
		InscricaoEstadual: e.InscricaoEstadual,
		Endereco:          e.Endereco,
		Cidade:            e.Cidade,
		UF:                e.UF,
		CodigoUF:          e.CodigoUF,
		Telefone:          e.Telefone,
		Email:             e.Email,
		UpdatedAt:         e.UpdatedAt,
	}
}
