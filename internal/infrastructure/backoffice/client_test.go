package backoffice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListCoupons(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/coupons", r.URL.Path)
		_, _ = w.Write([]byte(`[{"ID":3,"Name":"DIEZ","DiscountValue":10,"Tages":"%"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", 0)
	list, err := c.ListCoupons(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.Coupon{ID: 3, Name: "DIEZ", DiscountValue: 10, Tag: "%"}, list[0])
}

func TestClient_UpdateCouponSendsBackofficeFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/coupons/7", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	err := c.UpdateCoupon(context.Background(), entity.Coupon{ID: 7, Name: "FIJO", DiscountValue: 5, Tag: "$"})
	require.NoError(t, err)
	assert.Equal(t, "FIJO", got["Name"])
	assert.Equal(t, "$", got["Tages"])
	assert.NotContains(t, got, "ID")
}

func TestClient_ListCustomers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/unique-users", r.URL.Path)
		_, _ = w.Write([]byte(`[{"NOC":"Ana","PNO":"3001234567"}]`))
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL, 0).ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Customer{{Name: "Ana", Phone: "3001234567"}}, list)
}

func TestClient_HTTPErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, 0).DeleteCoupon(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
