package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	CustomerID string `json:"customer_id" validate:"required,min=1,max=100"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Role       string `json:"role" validate:"required,oneof=admin waiter"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin waiter"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"customer_id"`
	TenantCode string    `json:"ccode"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserListResponse usuarios del restaurante.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT. Role decide qué pantallas ve el cliente.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
