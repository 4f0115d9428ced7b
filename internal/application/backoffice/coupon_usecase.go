package backoffice

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/rs/zerolog"
)

// CouponUseCase cupones del backoffice con respaldo local para trabajar sin conexión.
type CouponUseCase struct {
	remote CouponSource
	cache  CouponCache
	log    zerolog.Logger
}

// NewCouponUseCase construye el caso de uso. cache puede ser nil (sin modo offline).
func NewCouponUseCase(remote CouponSource, cache CouponCache, log zerolog.Logger) *CouponUseCase {
	return &CouponUseCase{remote: remote, cache: cache, log: log}
}

// List consulta el backoffice y refresca la caché. Si el backoffice falla sirve la caché con Offline=true.
func (uc *CouponUseCase) List(ctx context.Context) (*dto.CouponListResponse, error) {
	coupons, err := uc.remote.ListCoupons(ctx)
	if err == nil {
		if uc.cache != nil {
			if cerr := uc.cache.Replace(ctx, coupons); cerr != nil {
				uc.log.Warn().Err(cerr).Msg("no se pudo refrescar la caché de cupones")
			}
		}
		return &dto.CouponListResponse{Items: toCouponResponses(coupons)}, nil
	}

	uc.log.Warn().Err(err).Msg("backoffice de cupones no disponible, usando caché local")
	if uc.cache == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	cached, cerr := uc.cache.List(ctx)
	if cerr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, cerr)
	}
	return &dto.CouponListResponse{Items: toCouponResponses(cached), Offline: true}, nil
}

// Create da de alta un cupón en el backoffice.
func (uc *CouponUseCase) Create(ctx context.Context, in dto.CouponRequest) error {
	c, err := toCoupon(0, in)
	if err != nil {
		return err
	}
	if err := uc.remote.CreateCoupon(ctx, c); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}

// Update modifica un cupón del backoffice.
func (uc *CouponUseCase) Update(ctx context.Context, id int64, in dto.CouponRequest) error {
	c, err := toCoupon(id, in)
	if err != nil {
		return err
	}
	if err := uc.remote.UpdateCoupon(ctx, c); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}

// Delete elimina un cupón del backoffice.
func (uc *CouponUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.remote.DeleteCoupon(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}

func toCoupon(id int64, in dto.CouponRequest) (entity.Coupon, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.DiscountValue < 0 {
		return entity.Coupon{}, domain.ErrInvalidInput
	}
	return entity.Coupon{ID: id, Name: name, DiscountValue: in.DiscountValue, Tag: in.Tag}, nil
}

func toCouponResponses(list []entity.Coupon) []dto.CouponResponse {
	out := make([]dto.CouponResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CouponResponse{ID: c.ID, Name: c.Name, DiscountValue: c.DiscountValue, Tag: c.Tag})
	}
	return out
}
