package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/application/usecase"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/memory"
)

var (
	admin = tenant.Context{TenantCode: "REST01", Role: entity.RoleAdmin, UserID: "admin1", SessionID: "sid"}
	other = tenant.Context{TenantCode: "OTRO", Role: entity.RoleAdmin, UserID: "admin2", SessionID: "sid2"}
)

func productReq(name, category, price string) dto.ProductRequest {
	return dto.ProductRequest{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Ingredients: []dto.IngredientDTO{{StockID: "s1", Name: "Base", Quantity: 1}},
	}
}

func TestProductUseCase_CrearYActualizar(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewProductRepo())

	created, err := uc.Upsert(ctx, admin, "", productReq(" Limonada ", "Bebidas", "4.50"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Limonada", created.Name)
	assert.Equal(t, "REST01", created.TenantCode)

	updated, err := uc.Upsert(ctx, admin, created.ID, productReq("Limonada de coco", "Bebidas", "6"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, err := uc.GetByID(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Limonada de coco", got.Name)

	_, err = uc.Upsert(ctx, other, created.ID, productReq("Robo", "Bebidas", "1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	foreign, err := uc.GetByID(ctx, other, created.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)
}

func TestProductUseCase_Validacion(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepo())
	cases := map[string]dto.ProductRequest{
		"sin nombre":       productReq("", "Bebidas", "1"),
		"sin categoría":    productReq("Té", "", "1"),
		"precio negativo":  productReq("Té", "Bebidas", "-1"),
		"sin ingredientes": {Name: "Té", Category: "Bebidas", Price: decimal.NewFromInt(1)},
	}
	for name, in := range cases {
		_, err := uc.Upsert(context.Background(), admin, "", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}

	_, err := uc.Upsert(context.Background(), tenant.Context{}, "", productReq("Té", "Bebidas", "1"))
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

func TestProductUseCase_ListFiltraPorRestauranteCategoriaYTexto(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewProductRepo())
	for _, in := range []dto.ProductRequest{
		productReq("Café con leche", "Bebidas", "2"),
		productReq("Limonada", "Bebidas", "3"),
		productReq("Arepa", "Platos", "5"),
	} {
		_, err := uc.Upsert(ctx, admin, "", in)
		require.NoError(t, err)
	}
	_, err := uc.Upsert(ctx, other, "", productReq("Café ajeno", "Bebidas", "2"))
	require.NoError(t, err)

	all, err := uc.List(ctx, admin, "", entity.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)

	drinks, err := uc.List(ctx, admin, "", "Bebidas")
	require.NoError(t, err)
	assert.Len(t, drinks.Items, 2)

	coffee, err := uc.List(ctx, admin, "CAFE", "")
	require.NoError(t, err)
	require.Len(t, coffee.Items, 1)
	assert.Equal(t, "Café con leche", coffee.Items[0].Name)
}

func TestProductUseCase_DeleteIdempotente(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewProductRepo())
	p, err := uc.Upsert(ctx, admin, "", productReq("Arepa", "Platos", "5"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, other, p.ID))
	got, _ := uc.GetByID(ctx, admin, p.ID)
	assert.NotNil(t, got, "otro restaurante no puede borrarlo")

	require.NoError(t, uc.Delete(ctx, admin, p.ID))
	require.NoError(t, uc.Delete(ctx, admin, p.ID))
	got, _ = uc.GetByID(ctx, admin, p.ID)
	assert.Nil(t, got)
}

func TestStockUseCase_AjusteManualRegistraMovimiento(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStockRepo()
	movs := memory.NewStockMovementRepo()
	uc := usecase.NewStockUseCase(repo, movs, zerolog.Nop())

	created, err := uc.Upsert(ctx, admin, "", dto.StockRequest{Name: "Limón", Price: decimal.NewFromInt(1), Quantity: 10})
	require.NoError(t, err)
	assert.Zero(t, created.Version)

	updated, err := uc.Upsert(ctx, admin, created.ID, dto.StockRequest{Name: "Limón", Price: decimal.NewFromInt(1), Quantity: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)

	page, err := uc.Movements(ctx, admin, created.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.MovementTypeAdjust, page.Items[0].Type)
	assert.Equal(t, int64(15), page.Items[0].Delta)
	assert.Equal(t, int64(25), page.Items[0].ResultingQty)
	assert.Equal(t, 20, page.Page.Limit)

	// Sin cambio de cantidad no hay movimiento.
	_, err = uc.Upsert(ctx, admin, created.ID, dto.StockRequest{Name: "Limón tahití", Price: decimal.NewFromInt(2), Quantity: 25})
	require.NoError(t, err)
	assert.Len(t, movs.All(), 1)
}

func TestStockUseCase_AjusteConcurrenteConDescuentoEsConflicto(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStockRepo()
	movs := memory.NewStockMovementRepo()
	uc := usecase.NewStockUseCase(repo, movs, zerolog.Nop())

	created, err := uc.Upsert(ctx, admin, "", dto.StockRequest{Name: "Limón", Price: decimal.NewFromInt(1), Quantity: 10})
	require.NoError(t, err)

	// Un pedido descuenta 4 entre la lectura y la escritura del ajuste.
	repo.BeforeUpdate = func(id string) {
		repo.BeforeUpdate = nil
		cur, _ := repo.GetByID(ctx, id)
		ok, casErr := repo.CompareAndSwapQuantity(ctx, id, cur.Version, cur.Quantity-4)
		require.NoError(t, casErr)
		require.True(t, ok)
	}

	_, err = uc.Upsert(ctx, admin, created.ID, dto.StockRequest{Name: "Limón", Price: decimal.NewFromInt(1), Quantity: 25})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, int64(6), repo.Quantity(created.ID), "el descuento del pedido no se pisa")
	assert.Empty(t, movs.All(), "sin ajuste registrado")

	// Reintentar con la lectura fresca aplica el ajuste contra la cantidad real.
	updated, err := uc.Upsert(ctx, admin, created.ID, dto.StockRequest{Name: "Limón", Price: decimal.NewFromInt(1), Quantity: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(25), updated.Quantity)
	require.Len(t, movs.All(), 1)
	assert.Equal(t, int64(19), movs.All()[0].Delta)
}

func TestStockUseCase_ValidacionYRestaurante(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStockUseCase(memory.NewStockRepo(), memory.NewStockMovementRepo(), zerolog.Nop())

	_, err := uc.Upsert(ctx, admin, "", dto.StockRequest{Name: "Limón", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	created, err := uc.Upsert(ctx, admin, "", dto.StockRequest{Name: "Limón", Quantity: 1})
	require.NoError(t, err)

	_, err = uc.Movements(ctx, other, created.ID, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Upsert(ctx, other, created.ID, dto.StockRequest{Name: "X", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestTenantUseCase_GetYUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTenantRepo()
	require.NoError(t, repo.Create(ctx, &entity.Tenant{Code: "REST01", Name: "La Esquina"}))
	uc := usecase.NewTenantUseCase(repo)

	msg := "Gracias por su visita"
	resp, err := uc.Update(ctx, admin, dto.UpdateTenantRequest{Message: &msg})
	require.NoError(t, err)
	assert.Equal(t, "La Esquina", resp.Name)
	assert.Equal(t, msg, resp.Message)

	empty := ""
	_, err = uc.Update(ctx, admin, dto.UpdateTenantRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Get(ctx, other)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_UnePorDefectoYEnUso(t *testing.T) {
	ctx := context.Background()
	products := memory.NewProductRepo()
	puc := usecase.NewProductUseCase(products)
	for _, in := range []dto.ProductRequest{
		productReq("Brownie", "Desserts", "3"),
		productReq("Flan", "Desserts", "3"),
		productReq("Limonada", "Bebidas", "2"),
	} {
		_, err := puc.Upsert(ctx, admin, "", in)
		require.NoError(t, err)
	}

	resp, err := usecase.NewCategoryUseCase(memory.NewCategoryRepo(products)).List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, resp.Items, len(entity.DefaultCategories)+1)
	assert.Equal(t, entity.DefaultCategories[0], resp.Items[0].Name)
	assert.Equal(t, dto.CategoryResponse{Name: "Desserts", Products: 2}, resp.Items[1])
	assert.Equal(t, dto.CategoryResponse{Name: "Bebidas", Products: 1}, resp.Items[len(resp.Items)-1])
}
