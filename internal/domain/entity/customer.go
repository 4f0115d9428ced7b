package entity

// Customer cliente registrado en el backoffice externo (solo lectura).
type Customer struct {
	Name  string
	Phone string
}

// Coupon cupón de descuento administrado en el backoffice externo.
// Tag indica el tipo de descuento (por ejemplo "%" o monto fijo).
type Coupon struct {
	ID            int64
	Name          string
	DiscountValue float64
	Tag           string
}
