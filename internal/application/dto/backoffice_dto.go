package dto

// CouponRequest entrada para crear o actualizar un cupón.
type CouponRequest struct {
	Name          string  `json:"name" validate:"required"`
	DiscountValue float64 `json:"discount_value" validate:"min=0"`
	Tag           string  `json:"tag"`
}

// CouponResponse salida de un cupón.
type CouponResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	DiscountValue float64 `json:"discount_value"`
	Tag           string  `json:"tag"`
}

// CouponListResponse Offline es true cuando se sirvió la caché local por fallo del backoffice.
type CouponListResponse struct {
	Items   []CouponResponse `json:"items"`
	Offline bool             `json:"offline"`
}

// CustomerResponse cliente del backoffice.
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerListResponse clientes únicos del backoffice.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
}
