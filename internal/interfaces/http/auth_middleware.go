package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/pkg/jwt"
)

// Locals keys del contexto de sesión en Fiber.
const (
	LocalUserID     = "user_id"
	LocalTenantCode = "tenant_code"
	LocalRole       = "role"
	LocalSessionID  = "session_id"
)

// sessionResolver es el contrato mínimo que necesita el middleware para reconstruir la sesión.
// Lo implementa *tenant.Resolver.
type sessionResolver interface {
	Resolve(ctx context.Context, sessionID, userID string) (tenant.Context, error)
}

// AuthMiddleware valida el Bearer Token JWT y resuelve restaurante y rol desde el almacén de sesión.
// Un token válido cuya sesión ya no existe (logout o expiración) responde 401 MISSING_TENANT.
func AuthMiddleware(jwtSecret string, sessions sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		tc, err := sessions.Resolve(c.Context(), claims.SessionID, claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrMissingTenant) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TENANT", Message: "sesión cerrada o sin restaurante"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_UNAVAILABLE", Message: "no se pudo leer la sesión, intente más tarde"})
		}
		c.Locals(LocalUserID, tc.UserID)
		c.Locals(LocalTenantCode, tc.TenantCode)
		c.Locals(LocalRole, tc.Role)
		c.Locals(LocalSessionID, tc.SessionID)
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetTenantCode devuelve el código de restaurante de la sesión.
func GetTenantCode(c *fiber.Ctx) string { return localString(c, LocalTenantCode) }

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSessionID devuelve el id de sesión del token.
func GetSessionID(c *fiber.Ctx) string { return localString(c, LocalSessionID) }

// TenantContext arma el tenant.Context que reciben los casos de uso.
func TenantContext(c *fiber.Ctx) tenant.Context {
	return tenant.Context{
		TenantCode: GetTenantCode(c),
		Role:       GetRole(c),
		UserID:     GetUserID(c),
		SessionID:  GetSessionID(c),
	}
}
