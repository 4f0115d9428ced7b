// Package order contiene la lógica pura del pedido en construcción (sin E/S).
package order

import (
	"github.com/jhoicas/Comandera-api/internal/domain"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LedgerEntry consumo de un ingrediente por una línea concreta del borrador.
type LedgerEntry struct {
	Line       int
	Ingredient entity.Ingredient
}

// Draft pedido en construcción de una sesión. Total es siempre la suma de los precios de Lines.
type Draft struct {
	Lines []entity.OrderLine `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// NewDraft devuelve un borrador vacío.
func NewDraft() *Draft {
	return &Draft{Lines: []entity.OrderLine{}, Total: decimal.Zero}
}

// AddItem agrega una copia del producto al final y suma su precio.
func (d *Draft) AddItem(p *entity.Product) {
	d.AddLine(entity.LineFromProduct(p))
}

// AddLine agrega una línea ya construida.
func (d *Draft) AddLine(line entity.OrderLine) {
	d.Lines = append(d.Lines, line)
	d.Total = d.Total.Add(line.Price)
}

// RemoveItem quita la línea index junto con su precio y su consumo.
// Con índice inválido devuelve ErrIndexOutOfRange y no modifica el borrador.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return domain.ErrIndexOutOfRange
	}
	removed := d.Lines[index]
	d.Lines = append(d.Lines[:index:index], d.Lines[index+1:]...)
	d.Total = d.Total.Sub(removed.Price)
	return nil
}

// Reset vacía líneas y total.
func (d *Draft) Reset() {
	d.Lines = []entity.OrderLine{}
	d.Total = decimal.Zero
}

// IsEmpty indica si no hay líneas.
func (d *Draft) IsEmpty() bool {
	return len(d.Lines) == 0
}

// Ledger aplana los ingredientes de cada línea en orden. No agrupa por StockID:
// dos líneas que usan el mismo insumo producen dos entradas.
func (d *Draft) Ledger() []LedgerEntry {
	var out []LedgerEntry
	for i, line := range d.Lines {
		for _, ing := range line.Ingredients {
			out = append(out, LedgerEntry{Line: i, Ingredient: ing})
		}
	}
	return out
}

// Clone devuelve una copia independiente del borrador.
func (d *Draft) Clone() *Draft {
	c := &Draft{Lines: make([]entity.OrderLine, len(d.Lines)), Total: d.Total}
	copy(c.Lines, d.Lines)
	return c
}
