package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, tenant_code, name, price, category, ingredients, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Los ingredientes se guardan como JSONB conservando el orden.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	ings, err := json.Marshal(p.Ingredients)
	if err != nil {
		return fmt.Errorf("encode ingredients: %w", err)
	}
	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		p.ID, p.TenantCode, p.Name, p.Price, p.Category, ings, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id::text = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reescribe nombre, precio, categoría e ingredientes.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	ings, err := json.Marshal(p.Ingredients)
	if err != nil {
		return fmt.Errorf("encode ingredients: %w", err)
	}
	query := `
		UPDATE products SET name = $3, price = $4, category = $5, ingredients = $6, updated_at = $7
		WHERE id::text = $1 AND tenant_code = $2`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.TenantCode, p.Name, p.Price, p.Category, ings, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista productos del restaurante, opcionalmente por categoría.
func (r *ProductRepo) ListByTenant(ctx context.Context, tenantCode string, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE tenant_code = $1 AND ($2 = '' OR category = $2)
		ORDER BY category, name`
	rows, err := r.q.Query(ctx, query, tenantCode, filter.Category)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto del restaurante. No falla si no existe.
func (r *ProductRepo) Delete(ctx context.Context, tenantCode, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id::text = $1 AND tenant_code = $2`, id, tenantCode)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var ings []byte
	if err := row.Scan(&p.ID, &p.TenantCode, &p.Name, &p.Price, &p.Category, &ings, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(ings) > 0 {
		if err := json.Unmarshal(ings, &p.Ingredients); err != nil {
			return nil, fmt.Errorf("decode ingredients: %w", err)
		}
	}
	return &p, nil
}
