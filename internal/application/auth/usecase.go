package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"github.com/jhoicas/Comandera-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de restaurante, login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
	sessions SessionManager
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tx TxRunner, sessions SessionManager, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, sessions: sessions, jwtCfg: jwtCfg, now: time.Now}
}

// Signup crea el restaurante y su primer usuario (admin) en una sola transacción.
// Devuelve ErrTenantExists o ErrUserAlreadyExists si el código o el customer id ya existen.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	code := strings.TrimSpace(in.TenantCode)
	cid := strings.TrimSpace(in.CustomerID)
	if code == "" || cid == "" || in.Password == "" || strings.TrimSpace(in.Restaurant) == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	t := &entity.Tenant{
		Code:      code,
		Name:      in.Restaurant,
		Phone:     in.Phone,
		Address:   in.Address,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	name := in.Name
	if name == "" {
		name = cid
	}
	user := &entity.User{
		ID:           cid,
		TenantCode:   code,
		Name:         name,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunSignup(ctx, func(tenantRepo repository.TenantRepository, userRepo repository.UserRepository) error {
		existing, err := tenantRepo.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrTenantExists
		}
		if u, err := userRepo.GetByID(ctx, cid); err != nil {
			return err
		} else if u != nil {
			return domain.ErrUserAlreadyExists
		}
		if err := tenantRepo.Create(ctx, t); err != nil {
			return err
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica customer id y password, abre la sesión y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, strings.TrimSpace(in.CustomerID))
	if err != nil {
		return nil, err
	}
	// Usuario inexistente y password incorrecto responden igual.
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	sessionID := uuid.New().String()
	if err := uc.sessions.Open(ctx, sessionID, user.TenantCode, user.Role); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Claims{
		UserID:     user.ID,
		TenantCode: user.TenantCode,
		Role:       user.Role,
		SessionID:  sessionID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Close(ctx, sessionID)
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout elimina el estado de la sesión; el token deja de resolver un restaurante.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Close(ctx, sessionID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		TenantCode: u.TenantCode,
		Name:       u.Name,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
