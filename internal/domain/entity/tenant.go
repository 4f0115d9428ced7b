package entity

import "time"

// Tenant representa un restaurante. Code (ccode) es el identificador que acota todos los registros.
type Tenant struct {
	Code      string
	Name      string
	Phone     string
	Address   string
	Message   string // pie del ticket
	CreatedAt time.Time
	UpdatedAt time.Time
}
