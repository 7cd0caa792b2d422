package entity

import "github.com/shopspring/decimal"

// BOMLine una línea de la lista de materiales: cuánto material se consume
// por unidad de producto terminado. Los tags json se usan para persistir el
// snapshot en la orden de producción como lista tipada (no blob ad hoc).
type BOMLine struct {
	MaterialID      string          `json:"material_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// CloneBOM copia una lista de líneas BOM. El snapshot de la orden debe ser
// una copia, nunca una referencia a la BOM activa.
func CloneBOM(lines []BOMLine) []BOMLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]BOMLine, len(lines))
	copy(out, lines)
	return out
}
