package dto

// Límites de paginación de los listados de movimientos.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest ventana solicitada sobre un listado (query ?limit=&offset=).
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize acota Limit a [1, MaxPageLimit] y Offset a >= 0.
func (p *PageRequest) Normalize() {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse ventana efectivamente devuelta.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error de la API. Code es estable (VALIDATION, NOT_FOUND, MISSING_TENANT...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
