package backoffice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandera-api/internal/application/backoffice"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

type fakeRemote struct {
	coupons   []entity.Coupon
	customers []entity.Customer
	err       error
	created   []entity.Coupon
	deleted   []int64
}

func (f *fakeRemote) ListCoupons(context.Context) ([]entity.Coupon, error) {
	return f.coupons, f.err
}

func (f *fakeRemote) CreateCoupon(_ context.Context, c entity.Coupon) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeRemote) UpdateCoupon(_ context.Context, c entity.Coupon) error { return f.err }

func (f *fakeRemote) DeleteCoupon(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeRemote) ListCustomers(context.Context) ([]entity.Customer, error) {
	return f.customers, f.err
}

type fakeCache struct {
	list []entity.Coupon
}

func (c *fakeCache) Replace(_ context.Context, coupons []entity.Coupon) error {
	c.list = append([]entity.Coupon(nil), coupons...)
	return nil
}

func (c *fakeCache) List(context.Context) ([]entity.Coupon, error) { return c.list, nil }

func TestCouponList_RefrescaCacheYLaUsaSinConexion(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{coupons: []entity.Coupon{{ID: 1, Name: "VERANO", DiscountValue: 10, Tag: "%"}}}
	cache := &fakeCache{}
	uc := backoffice.NewCouponUseCase(remote, cache, zerolog.Nop())

	online, err := uc.List(ctx)
	require.NoError(t, err)
	assert.False(t, online.Offline)
	require.Len(t, online.Items, 1)
	assert.Len(t, cache.list, 1)

	remote.err = errors.New("connection refused")
	offline, err := uc.List(ctx)
	require.NoError(t, err)
	assert.True(t, offline.Offline)
	assert.Equal(t, online.Items, offline.Items)
}

func TestCouponList_SinCacheEsUpstreamNoDisponible(t *testing.T) {
	uc := backoffice.NewCouponUseCase(&fakeRemote{err: errors.New("timeout")}, nil, zerolog.Nop())
	_, err := uc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestCouponCreate_ValidaEntrada(t *testing.T) {
	remote := &fakeRemote{}
	uc := backoffice.NewCouponUseCase(remote, nil, zerolog.Nop())

	assert.ErrorIs(t, uc.Create(context.Background(), dto.CouponRequest{Name: " "}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Create(context.Background(), dto.CouponRequest{Name: "X", DiscountValue: -5}), domain.ErrInvalidInput)
	require.NoError(t, uc.Create(context.Background(), dto.CouponRequest{Name: " NAVIDAD ", DiscountValue: 5000, Tag: "$"}))
	require.Len(t, remote.created, 1)
	assert.Equal(t, "NAVIDAD", remote.created[0].Name)

	require.NoError(t, uc.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, remote.deleted)
}

func TestCustomerList(t *testing.T) {
	remote := &fakeRemote{customers: []entity.Customer{{Name: "Luis", Phone: "300"}}}
	uc := backoffice.NewCustomerUseCase(remote)

	resp, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Luis", resp.Items[0].Name)

	remote.err = errors.New("502")
	_, err = uc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
