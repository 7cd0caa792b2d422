package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkCenter centro de trabajo donde se ejecutan pasos de la ruta.
// CapacityPerHour en unidades/hora; cero significa sin capacidad configurada.
type WorkCenter struct {
	ID              string
	Name            string
	CapacityPerHour decimal.Decimal
	CreatedAt       time.Time
}
