package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	IsFinished  bool            `json:"is_finished"`
	MinStock    decimal.Decimal `json:"min_stock"`
}

// UpdateProductRequest entrada para actualizar metadatos (SKU e IsFinished inmutables).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	MinStock    *decimal.Decimal `json:"min_stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsFinished  bool            `json:"is_finished"`
	MinStock    decimal.Decimal `json:"min_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductToResponse convierte la entidad a DTO de salida.
func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		IsFinished:  p.IsFinished,
		MinStock:    p.MinStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// BOMLineDTO línea de la lista de materiales (request y response).
type BOMLineDTO struct {
	MaterialID      string          `json:"material_id" validate:"required"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// ReplaceBOMRequest body para PUT /api/products/:id/bom.
type ReplaceBOMRequest struct {
	Lines []BOMLineDTO `json:"lines"`
}

// BOMLinesToEntity convierte las líneas del request a entidades.
func BOMLinesToEntity(lines []BOMLineDTO) []entity.BOMLine {
	out := make([]entity.BOMLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.BOMLine{MaterialID: l.MaterialID, QuantityPerUnit: l.QuantityPerUnit})
	}
	return out
}

// BOMLinesToDTO convierte líneas de entidad a DTO.
func BOMLinesToDTO(lines []entity.BOMLine) []BOMLineDTO {
	out := make([]BOMLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, BOMLineDTO{MaterialID: l.MaterialID, QuantityPerUnit: l.QuantityPerUnit})
	}
	return out
}
