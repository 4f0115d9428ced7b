package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, tenant_code, table_number, billed_amount, lines, status, created_at, updated_at, billed_at`

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Las líneas se guardan como snapshot JSONB y no se reescriben.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido con su snapshot de líneas.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	snapshot, err := entity.EncodeSnapshot(o.Lines)
	if err != nil {
		return err
	}
	query := `INSERT INTO orders (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		o.ID, o.TenantCode, o.TableNumber, o.BilledAmount, snapshot, string(o.Status),
		o.CreatedAt, o.UpdatedAt, o.BilledAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas decodificadas.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id::text = $1`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// UpdateStatus fija el estado sin mirar el anterior. billed_at se conserva si ya estaba.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, at time.Time) error {
	query := `
		UPDATE orders SET status = $2, updated_at = $3,
			billed_at = CASE WHEN $2 = 'billed' THEN COALESCE(billed_at, $3) ELSE billed_at END
		WHERE id::text = $1`
	cmd, err := r.q.Exec(ctx, query, id, string(status), at)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista pedidos del restaurante, más recientes primero.
func (r *OrderRepo) ListByTenant(ctx context.Context, tenantCode string, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE tenant_code = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR table_number::text LIKE '%' || $3 || '%')
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, tenantCode, string(filter.Status), filter.Table)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var snapshot []byte
	var status string
	if err := row.Scan(&o.ID, &o.TenantCode, &o.TableNumber, &o.BilledAmount, &snapshot, &status,
		&o.CreatedAt, &o.UpdatedAt, &o.BilledAt); err != nil {
		return nil, err
	}
	lines, err := entity.DecodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	o.Status = entity.OrderStatus(status)
	return &o, nil
}
