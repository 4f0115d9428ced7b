// Package memory implementa los puertos de persistencia en memoria para las pruebas
// de los casos de uso. Respeta las mismas reglas que los adaptadores reales
// (versión por fila, snapshot de líneas, borrado idempotente).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

var (
	_ repository.StockRepository         = (*StockRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
)

// StockRepo insumos en memoria con la misma semántica de versión que el adaptador SQL.
type StockRepo struct {
	mu    sync.Mutex
	items map[string]entity.StockItem

	// BeforeCAS, si no es nil, se ejecuta antes de cada compare-and-swap (fuera del lock).
	BeforeCAS func(id string)
	// CASErr, si no es nil, hace fallar todo compare-and-swap con ese error.
	CASErr error
	// BeforeUpdate, si no es nil, se ejecuta antes de cada Update (fuera del lock).
	BeforeUpdate func(id string)
}

// NewStockRepo construye el repositorio vacío.
func NewStockRepo() *StockRepo {
	return &StockRepo{items: make(map[string]entity.StockItem)}
}

func (r *StockRepo) Create(_ context.Context, s *entity.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.Version = 0
	r.items[s.ID] = *s
	return nil
}

func (r *StockRepo) GetByID(_ context.Context, id string) (*entity.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *StockRepo) Update(_ context.Context, s *entity.StockItem) error {
	if r.BeforeUpdate != nil {
		r.BeforeUpdate(s.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[s.ID]
	if !ok || cur.TenantCode != s.TenantCode {
		return domain.ErrNotFound
	}
	if cur.Version != s.Version {
		return domain.ErrConflict
	}
	cur.Name, cur.Price, cur.Quantity, cur.UpdatedAt = s.Name, s.Price, s.Quantity, s.UpdatedAt
	cur.Version++
	r.items[s.ID] = cur
	s.Version = cur.Version
	return nil
}

func (r *StockRepo) ListByTenant(_ context.Context, tenantCode string) ([]*entity.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockItem
	for _, s := range r.items {
		if s.TenantCode == tenantCode {
			s := s
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *StockRepo) Delete(_ context.Context, tenantCode, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.items[id]; ok && s.TenantCode == tenantCode {
		delete(r.items, id)
	}
	return nil
}

func (r *StockRepo) CompareAndSwapQuantity(_ context.Context, id string, expectedVersion, quantity int64) (bool, error) {
	if r.BeforeCAS != nil {
		r.BeforeCAS(id)
	}
	if r.CASErr != nil {
		return false, r.CASErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok || s.Version != expectedVersion {
		return false, nil
	}
	s.Quantity = quantity
	s.Version++
	r.items[id] = s
	return true, nil
}

// Quantity devuelve la cantidad actual; -1 si no existe.
func (r *StockRepo) Quantity(id string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return -1
	}
	return s.Quantity
}

// StockMovementRepo movimientos en memoria.
type StockMovementRepo struct {
	mu   sync.Mutex
	list []entity.StockMovement
}

// NewStockMovementRepo construye el repositorio vacío.
func NewStockMovementRepo() *StockMovementRepo {
	return &StockMovementRepo{}
}

func (r *StockMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, *m)
	return nil
}

// ListByStock más recientes primero.
func (r *StockMovementRepo) ListByStock(_ context.Context, stockID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockMovement
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].StockID == stockID {
			m := r.list[i]
			out = append(out, &m)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// All devuelve una copia de todos los movimientos en orden de registro.
func (r *StockMovementRepo) All() []entity.StockMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.StockMovement(nil), r.list...)
}
