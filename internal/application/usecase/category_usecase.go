package usecase

import (
	"context"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

// CategoryUseCase categorías disponibles para la carta.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List une las categorías por defecto con las que ya usan los productos del restaurante.
// Las por defecto van primero, en su orden; las demás siguen ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context, tc tenant.Context) (*dto.CategoryListResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	used, err := uc.repo.ListByTenant(ctx, tc.TenantCode)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(used))
	for _, c := range used {
		counts[c.Name] = c.Products
	}

	items := make([]dto.CategoryResponse, 0, len(entity.DefaultCategories)+len(used))
	seen := make(map[string]bool, len(entity.DefaultCategories))
	for _, name := range entity.DefaultCategories {
		seen[name] = true
		items = append(items, dto.CategoryResponse{Name: name, Products: counts[name]})
	}
	for _, c := range used {
		if !seen[c.Name] {
			items = append(items, dto.CategoryResponse{Name: c.Name, Products: c.Products})
		}
	}
	return &dto.CategoryListResponse{Items: items}, nil
}
