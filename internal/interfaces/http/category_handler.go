package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comandera-api/internal/application/usecase"
)

// CategoryHandler categorías de la carta.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Categorías de la carta
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/products/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), TenantContext(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
