package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Name      string          `json:"name"`
	Deadline  *time.Time      `json:"deadline,omitempty"`
}

// UpdateProgressRequest body para PATCH /api/work-orders/:id/progress.
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

// OrderResponse salida de una orden de producción.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	Name        string              `json:"name"`
	ProductID   string              `json:"product_id"`
	Quantity    decimal.Decimal     `json:"quantity"`
	State       string              `json:"state"`
	Deadline    *time.Time          `json:"deadline,omitempty"`
	BOMSnapshot []BOMLineDTO        `json:"bom_snapshot"`
	CreatedBy   string              `json:"created_by"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	WorkOrders  []WorkOrderResponse `json:"work_orders,omitempty"`
}

// WorkOrderResponse salida de una orden de trabajo.
type WorkOrderResponse struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	Step           string          `json:"step"`
	WorkCenterID   string          `json:"work_center_id,omitempty"`
	Position       int             `json:"position"`
	Status         string          `json:"status"`
	Progress       int             `json:"progress"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	ActualMinutes  decimal.Decimal `json:"actual_minutes"`
	StartedAt      *time.Time      `json:"started_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
}

// AvailabilityResponse salida del chequeo de materiales de una orden.
type AvailabilityResponse struct {
	CanProduce bool                      `json:"can_produce"`
	Shortages  []domain.MaterialShortage `json:"shortages"`
}

// EventDTO evento de dominio incluido en las respuestas de mutación.
type EventDTO struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id,omitempty"`
	WorkOrderID string    `json:"work_order_id,omitempty"`
	Actor       string    `json:"actor,omitempty"`
	At          time.Time `json:"at"`
}

// OrderToResponse convierte la orden (y opcionalmente sus pasos) a DTO.
func OrderToResponse(o *entity.ManufacturingOrder, wos []*entity.WorkOrder) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Name:        o.Name,
		ProductID:   o.ProductID,
		Quantity:    o.Quantity,
		State:       o.State,
		Deadline:    o.Deadline,
		BOMSnapshot: BOMLinesToDTO(o.BOMSnapshot),
		CreatedBy:   o.CreatedBy,
		CompletedAt: o.CompletedAt,
		CreatedAt:   o.CreatedAt,
	}
	for _, wo := range wos {
		resp.WorkOrders = append(resp.WorkOrders, WorkOrderToResponse(wo))
	}
	return resp
}

// WorkOrderToResponse convierte la orden de trabajo a DTO.
func WorkOrderToResponse(wo *entity.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:             wo.ID,
		OrderID:        wo.OrderID,
		Step:           wo.Step,
		WorkCenterID:   wo.WorkCenterID,
		Position:       wo.Position,
		Status:         wo.Status,
		Progress:       wo.Progress,
		EstimatedHours: wo.EstimatedHours,
		ActualMinutes:  wo.ActualMinutes,
		StartedAt:      wo.StartedAt,
		CompletedAt:    wo.CompletedAt,
	}
}

// EventsToDTO convierte eventos de dominio a DTO.
func EventsToDTO(events []entity.DomainEvent) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, EventDTO{
			Type:        ev.Type,
			OrderID:     ev.OrderID,
			WorkOrderID: ev.WorkOrderID,
			Actor:       ev.Actor,
			At:          ev.At,
		})
	}
	return out
}
