package entity

import "time"

// Tipos de eventos de dominio emitidos por el núcleo de producción.
// El notificador externo decide el transporte; el núcleo solo los emite.
const (
	EventOrderCreated       = "order.created"
	EventOrderCanceled      = "order.canceled"
	EventOrderCompleted     = "order.completed"
	EventWorkOrderStarted   = "workorder.started"
	EventWorkOrderPaused    = "workorder.paused"
	EventWorkOrderCompleted = "workorder.completed"
	EventWorkOrderProgress  = "workorder.progress"
	EventStockPosted        = "stock.posted"
)

// DomainEvent evento estructurado de un cambio de estado del núcleo.
type DomainEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id,omitempty"`
	WorkOrderID string    `json:"work_order_id,omitempty"`
	ProductID   string    `json:"product_id,omitempty"`
	Actor       string    `json:"actor,omitempty"`
	At          time.Time `json:"at"`
}
