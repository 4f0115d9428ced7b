package inventory

// NextQuantity calcula la existencia tras descontar required (servicio de dominio).
// No aplica piso: el resultado puede ser negativo y short lo indica.
//
//	next = current - required
func NextQuantity(current, required int64) (next int64, short bool) {
	next = current - required
	return next, next < 0
}
