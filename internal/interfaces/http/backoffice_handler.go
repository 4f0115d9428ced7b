package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comandera-api/internal/application/backoffice"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
)

// BackofficeHandler cupones y clientes del backoffice externo (solo admin).
type BackofficeHandler struct {
	coupons   *backoffice.CouponUseCase
	customers *backoffice.CustomerUseCase
}

// NewBackofficeHandler construye el handler.
func NewBackofficeHandler(coupons *backoffice.CouponUseCase, customers *backoffice.CustomerUseCase) *BackofficeHandler {
	return &BackofficeHandler{coupons: coupons, customers: customers}
}

// ListCoupons godoc
// @Summary      Listar cupones
// @Description  Si el backoffice no responde se devuelve la última copia local con offline=true.
// @Tags         coupons
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CouponListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/coupons [get]
func (h *BackofficeHandler) ListCoupons(c *fiber.Ctx) error {
	out, err := h.coupons.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateCoupon POST /api/coupons
func (h *BackofficeHandler) CreateCoupon(c *fiber.Ctx) error {
	var in dto.CouponRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.coupons.Create(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// UpdateCoupon PUT /api/coupons/:id
func (h *BackofficeHandler) UpdateCoupon(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CouponRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.coupons.Update(c.Context(), int64(id), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCoupon DELETE /api/coupons/:id
func (h *BackofficeHandler) DeleteCoupon(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.coupons.Delete(c.Context(), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCustomers GET /api/customers
func (h *BackofficeHandler) ListCustomers(c *fiber.Ctx) error {
	out, err := h.customers.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
