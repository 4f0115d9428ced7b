package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserAlreadyExists   = errors.New("el usuario ya está registrado")
	ErrTenantExists        = errors.New("el código de restaurante ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrMissingTenant       = errors.New("código de restaurante ausente en la sesión")
	ErrIndexOutOfRange     = errors.New("índice fuera de rango")
	ErrRemoteWrite         = errors.New("fallo de escritura en el almacén")
	ErrUpstreamUnavailable = errors.New("servicio externo no disponible")
)
