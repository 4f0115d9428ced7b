package entity

// DefaultCategories categorías que la carta ofrece al dar de alta productos.
var DefaultCategories = []string{"Main Course", "Desserts", "Starters", "Lunch", "Breakfast"}

// Category categoría de la carta y cuántos productos del restaurante la usan.
type Category struct {
	Name     string
	Products int
}
