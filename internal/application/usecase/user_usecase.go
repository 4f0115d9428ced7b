package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase aplica reglas de negocio para el personal del restaurante.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// Create registra un usuario en el restaurante del contexto.
func (uc *UserUseCase) Create(ctx context.Context, tc tenant.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(in.CustomerID)
	if id == "" || in.Password == "" || !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           id,
		TenantCode:   tc.TenantCode,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByID obtiene un usuario del restaurante. nil, nil si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, tc tenant.Context, id string) (*dto.UserResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantCode != tc.TenantCode {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// Update modifica nombre, rol o password.
func (uc *UserUseCase) Update(ctx context.Context, tc tenant.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantCode != tc.TenantCode {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.IsValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// List lista el personal del restaurante.
func (uc *UserUseCase) List(ctx context.Context, tc tenant.Context) (*dto.UserListResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByTenant(ctx, tc.TenantCode)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

// Delete elimina un usuario. Un usuario no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, tc tenant.Context, id string) error {
	if err := tc.Require(); err != nil {
		return err
	}
	if id == tc.UserID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, tc.TenantCode, id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
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
