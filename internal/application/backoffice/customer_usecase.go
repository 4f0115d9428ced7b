package backoffice

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/domain"
)

// CustomerUseCase consulta de clientes registrados en el backoffice.
type CustomerUseCase struct {
	remote CustomerSource
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(remote CustomerSource) *CustomerUseCase {
	return &CustomerUseCase{remote: remote}
}

// List devuelve los clientes únicos.
func (uc *CustomerUseCase) List(ctx context.Context) (*dto.CustomerListResponse, error) {
	list, err := uc.remote.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CustomerResponse{Name: c.Name, Phone: c.Phone})
	}
	return &dto.CustomerListResponse{Items: items}, nil
}
