package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/usecase"
)

// TenantHandler perfil del restaurante de la sesión.
type TenantHandler struct {
	uc *usecase.TenantUseCase
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *usecase.TenantUseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Get godoc
// @Summary      Perfil del restaurante
// @Tags         tenant
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TenantResponse
// @Router       /api/tenant [get]
func (h *TenantHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), TenantContext(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "restaurante no encontrado")
	}
	return c.JSON(out)
}

// Update PUT /api/tenant (solo admin). Los campos omitidos no cambian.
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), TenantContext(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
