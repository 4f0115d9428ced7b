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
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.TenantRepository  = (*TenantRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
)

// ProductRepo productos en memoria.
type ProductRepo struct {
	mu    sync.Mutex
	items map[string]entity.Product
}

// NewProductRepo construye el repositorio vacío.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{items: make(map[string]entity.Product)}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = cloneProduct(*p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	p = cloneProduct(p)
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[p.ID]
	if !ok || cur.TenantCode != p.TenantCode {
		return domain.ErrNotFound
	}
	r.items[p.ID] = cloneProduct(*p)
	return nil
}

func (r *ProductRepo) ListByTenant(_ context.Context, tenantCode string, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.items {
		if p.TenantCode != tenantCode {
			continue
		}
		if filter.Category != "" && filter.Category != entity.CategoryAll && p.Category != filter.Category {
			continue
		}
		p = cloneProduct(p)
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) Delete(_ context.Context, tenantCode, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.items[id]; ok && p.TenantCode == tenantCode {
		delete(r.items, id)
	}
	return nil
}

func cloneProduct(p entity.Product) entity.Product {
	p.Ingredients = append([]entity.Ingredient(nil), p.Ingredients...)
	return p
}

// TenantRepo restaurantes en memoria.
type TenantRepo struct {
	mu    sync.Mutex
	items map[string]entity.Tenant
}

// NewTenantRepo construye el repositorio vacío.
func NewTenantRepo() *TenantRepo {
	return &TenantRepo{items: make(map[string]entity.Tenant)}
}

func (r *TenantRepo) Create(_ context.Context, t *entity.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[t.Code]; ok {
		return domain.ErrTenantExists
	}
	r.items[t.Code] = *t
	return nil
}

func (r *TenantRepo) GetByCode(_ context.Context, code string) (*entity.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.items[code]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TenantRepo) Update(_ context.Context, t *entity.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[t.Code]; !ok {
		return domain.ErrNotFound
	}
	r.items[t.Code] = *t
	return nil
}

// UserRepo usuarios en memoria.
type UserRepo struct {
	mu    sync.Mutex
	items map[string]entity.User
}

// NewUserRepo construye el repositorio vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{items: make(map[string]entity.User)}
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; ok {
		return domain.ErrUserAlreadyExists
	}
	r.items[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[u.ID] = *u
	return nil
}

func (r *UserRepo) ListByTenant(_ context.Context, tenantCode string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.items {
		if u.TenantCode == tenantCode {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) Delete(_ context.Context, tenantCode, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok && u.TenantCode == tenantCode {
		delete(r.items, id)
	}
	return nil
}

// CategoryRepo categorías derivadas de un ProductRepo en memoria.
type CategoryRepo struct {
	products *ProductRepo
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// NewCategoryRepo construye la vista de categorías sobre products.
func NewCategoryRepo(products *ProductRepo) *CategoryRepo {
	return &CategoryRepo{products: products}
}

func (r *CategoryRepo) ListByTenant(_ context.Context, tenantCode string) ([]*entity.Category, error) {
	r.products.mu.Lock()
	defer r.products.mu.Unlock()
	counts := map[string]int{}
	for _, p := range r.products.items {
		if p.TenantCode == tenantCode {
			counts[p.Category]++
		}
	}
	out := make([]*entity.Category, 0, len(counts))
	for name, n := range counts {
		out = append(out, &entity.Category{Name: name, Products: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
