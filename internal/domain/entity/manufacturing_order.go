package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción. El estado se deriva del avance de sus
// órdenes de trabajo; el cliente solo fija PLANNED (crear) y CANCELED (cancelar).
const (
	OrderStatePlanned    = "PLANNED"
	OrderStateInProgress = "IN_PROGRESS"
	OrderStateDone       = "DONE"
	OrderStateCanceled   = "CANCELED"
)

// ManufacturingOrder orden de producción de un producto terminado.
// BOMSnapshot es la copia inmutable de la BOM activa al momento de crear la
// orden: ediciones posteriores de la BOM no afectan órdenes en curso.
type ManufacturingOrder struct {
	ID          string
	OrderNumber string
	Name        string
	ProductID   string
	Quantity    decimal.Decimal
	State       string
	Deadline    *time.Time
	BOMSnapshot []BOMLine
	CreatedBy   string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen indica si la orden admite avance de sus órdenes de trabajo.
func (o *ManufacturingOrder) IsOpen() bool {
	return o.State == OrderStatePlanned || o.State == OrderStateInProgress
}
