package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/repository"
)

// TenantUseCase perfil del restaurante (datos del ticket).
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// Get devuelve el perfil del restaurante de la sesión.
func (uc *TenantUseCase) Get(ctx context.Context, tc tenant.Context) (*dto.TenantResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByCode(ctx, tc.TenantCode)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(t), nil
}

// Update modifica nombre, teléfono, dirección o mensaje del ticket.
func (uc *TenantUseCase) Update(ctx context.Context, tc tenant.Context, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if err := tc.Require(); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByCode(ctx, tc.TenantCode)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Name = *in.Name
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	if in.Address != nil {
		t.Address = *in.Address
	}
	if in.Message != nil {
		t.Message = *in.Message
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		Code:      t.Code,
		Name:      t.Name,
		Phone:     t.Phone,
		Address:   t.Address,
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
