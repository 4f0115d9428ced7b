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

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un restaurante nuevo. Código repetido: ErrTenantExists.
func (r *TenantRepo) Create(ctx context.Context, t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (code, name, phone, address, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, t.Code, t.Name, t.Phone, t.Address, t.Message, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTenantExists
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByCode obtiene un restaurante por código.
func (r *TenantRepo) GetByCode(ctx context.Context, code string) (*entity.Tenant, error) {
	query := `
		SELECT code, name, phone, address, message, created_at, updated_at
		FROM tenants WHERE code = $1`
	var t entity.Tenant
	err := r.q.QueryRow(ctx, query, code).Scan(
		&t.Code, &t.Name, &t.Phone, &t.Address, &t.Message, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// Update actualiza los datos de perfil del restaurante.
func (r *TenantRepo) Update(ctx context.Context, t *entity.Tenant) error {
	query := `
		UPDATE tenants SET name = $2, phone = $3, address = $4, message = $5, updated_at = $6
		WHERE code = $1`
	cmd, err := r.q.Exec(ctx, query, t.Code, t.Name, t.Phone, t.Address, t.Message, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
