package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de trabajo (un paso de la ruta).
const (
	WorkOrderPending   = "PENDING"
	WorkOrderStarted   = "STARTED"
	WorkOrderPaused    = "PAUSED"
	WorkOrderCompleted = "COMPLETED"
)

// WorkOrder un paso de la ruta de una orden de producción, asignado a un
// centro de trabajo. ActualMinutes acumula los intervalos trabajados entre
// start y pause; StartedAt ancla el intervalo en curso y se limpia al pausar.
type WorkOrder struct {
	ID             string
	OrderID        string
	Step           string
	WorkCenterID   string // vacío = paso sin centro asignado
	Position       int
	Status         string
	Progress       int // 0..100
	EstimatedHours decimal.Decimal
	ActualMinutes  decimal.Decimal
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
