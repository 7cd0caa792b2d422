package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// RegisterEntryRequest body para POST /api/stock/entries.
type RegisterEntryRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Direction string          `json:"direction" validate:"required,oneof=IN OUT"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note"`
}

// StockEntryResponse salida de un asiento del libro.
type StockEntryResponse struct {
	ID           string          `json:"id"`
	Seq          int64           `json:"seq"`
	ProductID    string          `json:"product_id"`
	Direction    string          `json:"direction"`
	Quantity     decimal.Decimal `json:"quantity"`
	Change       decimal.Decimal `json:"change"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	SourceType   string          `json:"source_type"`
	SourceID     string          `json:"source_id,omitempty"`
	Note         string          `json:"note,omitempty"`
	CreatedBy    string          `json:"created_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// StockEntryToResponse convierte el asiento a DTO.
func StockEntryToResponse(e *entity.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		ID:           e.ID,
		Seq:          e.Seq,
		ProductID:    e.ProductID,
		Direction:    e.Direction,
		Quantity:     e.Quantity,
		Change:       e.Change,
		BalanceAfter: e.BalanceAfter,
		SourceType:   e.SourceType,
		SourceID:     e.SourceID,
		Note:         e.Note,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
	}
}
