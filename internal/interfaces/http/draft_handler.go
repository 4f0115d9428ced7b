package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/ordering"
)

// DraftHandler pedido en construcción de la sesión y su envío a cocina.
type DraftHandler struct {
	drafts *ordering.DraftUseCase
	submit *ordering.SubmitUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(drafts *ordering.DraftUseCase, submit *ordering.SubmitUseCase) *DraftHandler {
	return &DraftHandler{drafts: drafts, submit: submit}
}

// Get GET /api/draft
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	out, err := h.drafts.Get(c.Context(), TenantContext(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al borrador
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddDraftItemRequest  true  "product_id"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/draft/items [post]
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddDraftItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.drafts.AddItem(c.Context(), TenantContext(c), in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem DELETE /api/draft/items/:index
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index debe ser numérico"})
	}
	out, err := h.drafts.RemoveItem(c.Context(), TenantContext(c), index)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reset DELETE /api/draft
func (h *DraftHandler) Reset(c *fiber.Ctx) error {
	if err := h.drafts.Reset(c.Context(), TenantContext(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Submit godoc
// @Summary      Enviar el borrador como pedido de una mesa
// @Description  Persiste el pedido y descuenta los insumos. Los descuentos fallidos se informan en stock_report y caveat sin revertir el pedido.
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitOrderRequest  true  "table_number"
// @Success      201   {object}  dto.SubmitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/draft/submit [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.submit.Submit(c.Context(), TenantContext(c), in.TableNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
