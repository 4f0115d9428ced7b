// Package sqlite caché local de cupones para operar sin conexión al backoffice.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Comandera-api/internal/application/backoffice"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	_ "modernc.org/sqlite"
)

var _ backoffice.CouponCache = (*CouponCache)(nil)

const couponSchema = `
CREATE TABLE IF NOT EXISTS coupons (
	id             INTEGER NOT NULL,
	name           TEXT    NOT NULL,
	discount_value REAL    NOT NULL,
	tag            TEXT    NOT NULL DEFAULT ''
);`

// CouponCache copia de la última lista de cupones obtenida del backoffice.
type CouponCache struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y aplica el esquema.
func Open(ctx context.Context, path string) (*CouponCache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de caché: %w", err)
		}
	}
	// Busy timeout + WAL para concurrencia
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout=5000&_pragma=journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, couponSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrar caché de cupones: %w", err)
	}
	return &CouponCache{db: db}, nil
}

// Close cierra la base.
func (c *CouponCache) Close() error {
	return c.db.Close()
}

// Replace reemplaza el contenido completo en una transacción.
func (c *CouponCache) Replace(ctx context.Context, coupons []entity.Coupon) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM coupons`); err != nil {
		return fmt.Errorf("vaciar cupones: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO coupons (id, name, discount_value, tag) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparar insert: %w", err)
	}
	defer stmt.Close()
	for _, cp := range coupons {
		if _, err := stmt.ExecContext(ctx, cp.ID, cp.Name, cp.DiscountValue, cp.Tag); err != nil {
			return fmt.Errorf("insertar cupón %q: %w", cp.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve los cupones en el orden en que se guardaron.
func (c *CouponCache) List(ctx context.Context) ([]entity.Coupon, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, discount_value, tag FROM coupons ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listar cupones: %w", err)
	}
	defer rows.Close()
	list := []entity.Coupon{}
	for rows.Next() {
		var cp entity.Coupon
		if err := rows.Scan(&cp.ID, &cp.Name, &cp.DiscountValue, &cp.Tag); err != nil {
			return nil, fmt.Errorf("scan cupón: %w", err)
		}
		list = append(list, cp)
	}
	return list, rows.Err()
}
