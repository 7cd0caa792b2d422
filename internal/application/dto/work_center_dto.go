package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// CreateWorkCenterRequest body para POST /api/work-centers.
type CreateWorkCenterRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=100"`
	CapacityPerHour decimal.Decimal `json:"capacity_per_hour"`
}

// WorkCenterResponse salida de un centro de trabajo.
type WorkCenterResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CapacityPerHour decimal.Decimal `json:"capacity_per_hour"`
	CreatedAt       time.Time       `json:"created_at"`
}

// WorkCenterToResponse convierte la entidad a DTO.
func WorkCenterToResponse(wc *entity.WorkCenter) WorkCenterResponse {
	return WorkCenterResponse{
		ID:              wc.ID,
		Name:            wc.Name,
		CapacityPerHour: wc.CapacityPerHour,
		CreatedAt:       wc.CreatedAt,
	}
}
