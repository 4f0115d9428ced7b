package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comandera-api/internal/application/auth"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/memory"
	"github.com/jhoicas/Comandera-api/pkg/jwt"
)

const secret = "clave-de-pruebas"

// memTx ejecuta el alta directamente sobre los repositorios en memoria.
type memTx struct {
	tenants *memory.TenantRepo
	users   *memory.UserRepo
}

func (m memTx) RunSignup(_ context.Context, fn func(repository.TenantRepository, repository.UserRepository) error) error {
	return fn(m.tenants, m.users)
}

func newAuth() (*auth.AuthUseCase, *tenant.Resolver, *memory.TenantRepo, *memory.UserRepo) {
	tenants := memory.NewTenantRepo()
	users := memory.NewUserRepo()
	resolver := tenant.NewResolver(memory.NewSessionStore())
	uc := auth.NewAuthUseCase(users, memTx{tenants: tenants, users: users}, resolver, auth.JWTConfig{
		Secret: secret, ExpMinutes: 60, Issuer: "comandera-test",
	})
	return uc, resolver, tenants, users
}

func signupReq() dto.SignupRequest {
	return dto.SignupRequest{
		CustomerID: "dueno",
		Password:   "secreto",
		Name:       "Dueño",
		TenantCode: "REST01",
		Restaurant: "La Esquina",
		Message:    "Vuelva pronto",
	}
}

func TestSignup_CreaRestauranteYAdmin(t *testing.T) {
	uc, _, tenants, users := newAuth()
	ctx := context.Background()

	resp, err := uc.Signup(ctx, signupReq())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
	assert.Equal(t, "REST01", resp.TenantCode)

	tn, err := tenants.GetByCode(ctx, "REST01")
	require.NoError(t, err)
	require.NotNil(t, tn)
	assert.Equal(t, "Vuelva pronto", tn.Message)

	u, err := users.GetByID(ctx, "dueno")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "secreto", u.PasswordHash)
}

func TestSignup_Duplicados(t *testing.T) {
	uc, _, _, _ := newAuth()
	ctx := context.Background()
	_, err := uc.Signup(ctx, signupReq())
	require.NoError(t, err)

	again := signupReq()
	again.CustomerID = "otro"
	_, err = uc.Signup(ctx, again)
	assert.ErrorIs(t, err, domain.ErrTenantExists)

	sameUser := signupReq()
	sameUser.TenantCode = "REST02"
	_, err = uc.Signup(ctx, sameUser)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	bad := signupReq()
	bad.TenantCode = " "
	_, err = uc.Signup(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_AbreSesionYLogoutLaCierra(t *testing.T) {
	uc, resolver, _, _ := newAuth()
	ctx := context.Background()
	_, err := uc.Signup(ctx, signupReq())
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{CustomerID: "dueno", Password: "secreto"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "dueno", claims.UserID)
	require.NotEmpty(t, claims.SessionID)

	tc, err := resolver.Resolve(ctx, claims.SessionID, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "REST01", tc.TenantCode)
	assert.Equal(t, entity.RoleAdmin, tc.Role)

	require.NoError(t, uc.Logout(ctx, claims.SessionID))
	_, err = resolver.Resolve(ctx, claims.SessionID, claims.UserID)
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _, _ := newAuth()
	ctx := context.Background()
	_, err := uc.Signup(ctx, signupReq())
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{CustomerID: "dueno", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{CustomerID: "nadie", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
