package dto

import (
	"time"

	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// IngredientDTO consumo de un insumo por unidad del producto.
type IngredientDTO struct {
	StockID  string `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// ProductRequest entrada para crear o actualizar un producto.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	Ingredients []IngredientDTO `json:"ingredients" validate:"required,min=1"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	TenantCode  string          `json:"ccode"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Ingredients []IngredientDTO `json:"ingredients"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse productos del restaurante.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// NewIngredients convierte ingredientes del dominio.
func NewIngredients(ings []entity.Ingredient) []IngredientDTO {
	out := make([]IngredientDTO, 0, len(ings))
	for _, i := range ings {
		out = append(out, IngredientDTO{StockID: i.StockID, Name: i.Name, Quantity: i.Quantity})
	}
	return out
}

// ToEntities convierte los ingredientes de la petición al dominio.
func ToEntities(ings []IngredientDTO) []entity.Ingredient {
	out := make([]entity.Ingredient, 0, len(ings))
	for _, i := range ings {
		out = append(out, entity.Ingredient{StockID: i.StockID, Name: i.Name, Quantity: i.Quantity})
	}
	return out
}

// CategoryResponse categoría de la carta con la cantidad de productos que la usan.
type CategoryResponse struct {
	Name     string `json:"name"`
	Products int    `json:"products"`
}

// CategoryListResponse categorías disponibles.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
