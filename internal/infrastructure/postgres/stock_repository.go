package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, tenant_code, name, price, quantity, version, created_at, updated_at`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Toda escritura de quantity incrementa version.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un insumo nuevo con versión 0.
func (r *StockRepo) Create(ctx context.Context, s *entity.StockItem) error {
	query := `INSERT INTO stock_items (` + stockColumns + `) VALUES ($1, $2, $3, $4, $5, 0, $6, $7)`
	_, err := r.q.Exec(ctx, query, s.ID, s.TenantCode, s.Name, s.Price, s.Quantity, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	s.Version = 0
	return nil
}

// GetByID obtiene el insumo con su versión actual.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_items WHERE id::text = $1`
	s, err := scanStock(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return s, nil
}

// Update reescribe nombre, precio y cantidad (edición manual, última escritura gana).
func (r *StockRepo) Update(ctx context.Context, s *entity.StockItem) error {
	query := `
		UPDATE stock_items SET name = $3, price = $4, quantity = $5, version = version + 1, updated_at = $6
		WHERE id::text = $1 AND tenant_code = $2 AND version = $7`
	cmd, err := r.q.Exec(ctx, query, s.ID, s.TenantCode, s.Name, s.Price, s.Quantity, s.UpdatedAt, s.Version)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	err = r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stock_items WHERE id::text = $1 AND tenant_code = $2)`,
		s.ID, s.TenantCode).Scan(&exists)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if exists {
		return domain.ErrConflict
	}
	return domain.ErrNotFound
}

// CompareAndSwapQuantity escribe quantity solo si version no cambió desde la lectura.
func (r *StockRepo) CompareAndSwapQuantity(ctx context.Context, id string, expectedVersion, quantity int64) (bool, error) {
	query := `
		UPDATE stock_items SET quantity = $3, version = version + 1, updated_at = now()
		WHERE id::text = $1 AND version = $2`
	cmd, err := r.q.Exec(ctx, query, id, expectedVersion, quantity)
	if err != nil {
		return false, fmt.Errorf("cas stock quantity: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// ListByTenant lista los insumos del restaurante ordenados por nombre.
func (r *StockRepo) ListByTenant(ctx context.Context, tenantCode string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_items WHERE tenant_code = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, tenantCode)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un insumo del restaurante. No falla si no existe.
func (r *StockRepo) Delete(ctx context.Context, tenantCode, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_items WHERE id::text = $1 AND tenant_code = $2`, id, tenantCode)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

func scanStock(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	if err := row.Scan(&s.ID, &s.TenantCode, &s.Name, &s.Price, &s.Quantity, &s.Version, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
