package ordering_test

import (
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/jhoicas/Comandera-api/internal/domain/order"
)

func newDraftWith(products ...*entity.Product) *order.Draft {
	d := order.NewDraft()
	for _, p := range products {
		d.AddItem(p)
	}
	return d
}
