// Package backoffice adaptador de la API REST externa de cupones y clientes.
package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	app "github.com/jhoicas/Comandera-api/internal/application/backoffice"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

var (
	_ app.CouponSource   = (*Client)(nil)
	_ app.CustomerSource = (*Client)(nil)
)

// Client implementa CouponSource y CustomerSource con net/http.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout 0 usa 10 s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Formato del backoffice ────────────────────────────────────────────────────

type couponPayload struct {
	ID            int64   `json:"ID,omitempty"`
	Name          string  `json:"Name"`
	DiscountValue float64 `json:"DiscountValue"`
	Tages         string  `json:"Tages"`
}

type customerPayload struct {
	NOC string `json:"NOC"` // nombre
	PNO string `json:"PNO"` // teléfono
}

// ListCoupons GET /coupons.
func (c *Client) ListCoupons(ctx context.Context) ([]entity.Coupon, error) {
	var payload []couponPayload
	if err := c.do(ctx, http.MethodGet, "/coupons", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Coupon, 0, len(payload))
	for _, p := range payload {
		out = append(out, entity.Coupon{ID: p.ID, Name: p.Name, DiscountValue: p.DiscountValue, Tag: p.Tages})
	}
	return out, nil
}

// CreateCoupon POST /coupons.
func (c *Client) CreateCoupon(ctx context.Context, cp entity.Coupon) error {
	return c.do(ctx, http.MethodPost, "/coupons", toPayload(cp), nil)
}

// UpdateCoupon PUT /coupons/{id}.
func (c *Client) UpdateCoupon(ctx context.Context, cp entity.Coupon) error {
	return c.do(ctx, http.MethodPut, "/coupons/"+strconv.FormatInt(cp.ID, 10), toPayload(cp), nil)
}

// DeleteCoupon DELETE /coupons/{id}.
func (c *Client) DeleteCoupon(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/coupons/"+strconv.FormatInt(id, 10), nil, nil)
}

// ListCustomers GET /unique-users.
func (c *Client) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var payload []customerPayload
	if err := c.do(ctx, http.MethodGet, "/unique-users", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(payload))
	for _, p := range payload {
		out = append(out, entity.Customer{Name: p.NOC, Phone: p.PNO})
	}
	return out, nil
}

func toPayload(cp entity.Coupon) couponPayload {
	return couponPayload{Name: cp.Name, DiscountValue: cp.DiscountValue, Tages: cp.Tag}
}

// do envía in como JSON (si no es nil) y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backoffice: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backoffice: crear HTTP request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if in != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backoffice: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("backoffice: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("backoffice: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backoffice: %s %s HTTP %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(rawBody)))
	}
	if out == nil || len(bytes.TrimSpace(rawBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("backoffice: deserializar respuesta: %w", err)
	}
	return nil
}
