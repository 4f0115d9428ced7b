package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleWaiter = "waiter"
)

// User representa un usuario del restaurante. ID es el customer id con el que inicia sesión.
type User struct {
	ID           string
	TenantCode   string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, waiter
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si role es uno de los roles soportados.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleWaiter
}
