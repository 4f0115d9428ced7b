package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos en memoria. Las líneas se guardan como snapshot serializado.
type OrderRepo struct {
	mu    sync.Mutex
	items map[string]storedOrder

	// CreateErr, si no es nil, hace fallar Create.
	CreateErr error
}

type storedOrder struct {
	order    entity.Order
	snapshot []byte
}

// NewOrderRepo construye el repositorio vacío.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{items: make(map[string]storedOrder)}
}

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	snapshot, err := entity.EncodeSnapshot(o.Lines)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *o
	stored.Lines = nil
	r.items[o.ID] = storedOrder{order: stored, snapshot: snapshot}
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s.decode()
}

func (r *OrderRepo) UpdateStatus(_ context.Context, id string, status entity.OrderStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.order.Status = status
	s.order.UpdatedAt = at
	if status == entity.OrderStatusBilled && s.order.BilledAt == nil {
		billedAt := at
		s.order.BilledAt = &billedAt
	}
	r.items[id] = s
	return nil
}

func (r *OrderRepo) ListByTenant(_ context.Context, tenantCode string, filter repository.OrderFilter) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, s := range r.items {
		if s.order.TenantCode != tenantCode {
			continue
		}
		if filter.Status != "" && s.order.Status != filter.Status {
			continue
		}
		if filter.Table != "" && !strings.Contains(strconv.Itoa(s.order.TableNumber), filter.Table) {
			continue
		}
		o, err := s.decode()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Count devuelve cuántos pedidos hay guardados.
func (r *OrderRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (s storedOrder) decode() (*entity.Order, error) {
	lines, err := entity.DecodeSnapshot(s.snapshot)
	if err != nil {
		return nil, err
	}
	o := s.order
	o.Lines = lines
	return &o, nil
}
