package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/usecase"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/memory"
)

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepo()
	uc := usecase.NewUserUseCase(repo)

	resp, err := uc.Create(ctx, admin, dto.CreateUserRequest{CustomerID: "mesero1", Password: "secreto", Name: "Ana", Role: "waiter"})
	require.NoError(t, err)
	assert.Equal(t, "REST01", resp.TenantCode)

	stored, err := repo.GetByID(ctx, "mesero1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto")))

	_, err = uc.Create(ctx, admin, dto.CreateUserRequest{CustomerID: "mesero1", Password: "otro123", Name: "Ana", Role: "waiter"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	_, err = uc.Create(ctx, admin, dto.CreateUserRequest{CustomerID: "x", Password: "secreto", Name: "X", Role: "chef"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_UpdateYDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(memory.NewUserRepo())
	_, err := uc.Create(ctx, admin, dto.CreateUserRequest{CustomerID: "mesero1", Password: "secreto", Name: "Ana", Role: "waiter"})
	require.NoError(t, err)

	role := "admin"
	resp, err := uc.Update(ctx, admin, "mesero1", dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)

	_, err = uc.Update(ctx, other, "mesero1", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, admin, admin.UserID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(ctx, admin, "mesero1"))

	list, err := uc.List(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
