package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"github.com/jhoicas/Comandera-api/pkg/textsearch"
)

// ProductUseCase casos de uso CRUD para los productos de la carta.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Upsert crea el producto si id está vacío; si no, lo actualiza.
// Un id que no existe en el restaurante devuelve ErrNotFound.
func (uc *ProductUseCase) Upsert(ctx context.Context, tc tenant.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	now := uc.now()
	product := &entity.Product{
		ID:          id,
		TenantCode:  tc.TenantCode,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Ingredients: dto.ToEntities(in.Ingredients),
		UpdatedAt:   now,
	}
	if !product.Validate() {
		return nil, domain.ErrInvalidInput
	}

	if id == "" {
		product.ID = uuid.New().String()
		product.CreatedAt = now
		if err := uc.repo.Create(ctx, product); err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.TenantCode != tc.TenantCode {
		return nil, domain.ErrNotFound
	}
	product.CreatedAt = existing.CreatedAt
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del restaurante. nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.ProductResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.TenantCode != tc.TenantCode {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista los productos del restaurante. category "All" o vacío no filtra;
// q busca en el nombre sin distinguir tildes ni mayúsculas.
func (uc *ProductUseCase) List(ctx context.Context, tc tenant.Context, q, category string) (*dto.ProductListResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	if category == entity.CategoryAll {
		category = ""
	}
	list, err := uc.repo.ListByTenant(ctx, tc.TenantCode, repository.ProductFilter{Category: category})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if !textsearch.Contains(p.Name, q) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Delete elimina un producto. Idempotente.
func (uc *ProductUseCase) Delete(ctx context.Context, tc tenant.Context, id string) error {
	if err := tc.Require(); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, tc.TenantCode, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		TenantCode:  p.TenantCode,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Ingredients: dto.NewIngredients(p.Ingredients),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
