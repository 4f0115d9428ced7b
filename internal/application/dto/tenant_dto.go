package dto

import "time"

// SignupRequest registro de un restaurante y su primer administrador.
type SignupRequest struct {
	CustomerID string `json:"customer_id" validate:"required,min=1,max=100"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	TenantCode string `json:"ccode" validate:"required,min=1,max=50"`
	Restaurant string `json:"restaurant_name" validate:"required,min=1,max=200"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Message    string `json:"message"`
}

// UpdateTenantRequest entrada para actualizar el perfil del restaurante (campos opcionales).
type UpdateTenantRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Message *string `json:"message"`
}

// TenantResponse salida del perfil del restaurante.
type TenantResponse struct {
	Code      string    `json:"ccode"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
