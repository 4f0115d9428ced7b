package backoffice

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// CouponSource API remota de cupones.
type CouponSource interface {
	ListCoupons(ctx context.Context) ([]entity.Coupon, error)
	CreateCoupon(ctx context.Context, c entity.Coupon) error
	UpdateCoupon(ctx context.Context, c entity.Coupon) error
	DeleteCoupon(ctx context.Context, id int64) error
}

// CouponCache copia local de la última lista de cupones obtenida.
type CouponCache interface {
	Replace(ctx context.Context, coupons []entity.Coupon) error
	List(ctx context.Context) ([]entity.Coupon, error)
}

// CustomerSource API remota de clientes únicos.
type CustomerSource interface {
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
}
