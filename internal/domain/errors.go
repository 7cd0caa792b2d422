package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrStateConflict     = errors.New("conflicto con el estado actual")
	ErrNotFinished       = errors.New("el producto no es un producto terminado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSettlementFailed  = errors.New("liquidación de la orden fallida")
)

// MaterialShortage detalle del faltante de un material para una orden.
type MaterialShortage struct {
	MaterialID string          `json:"material_id"`
	Required   decimal.Decimal `json:"required"`
	Available  decimal.Decimal `json:"available"`
	Shortage   decimal.Decimal `json:"shortage"`
}

// MaterialShortageError se retorna al iniciar una orden de trabajo sin stock
// suficiente. El chequeo es consultivo: la autoridad final es la liquidación.
type MaterialShortageError struct {
	OrderID   string
	Shortages []MaterialShortage
}

func (e *MaterialShortageError) Error() string {
	return fmt.Sprintf("stock insuficiente para la orden %s (%d materiales en falta)", e.OrderID, len(e.Shortages))
}

// Unwrap permite errors.Is(err, ErrInsufficientStock) en los handlers.
func (e *MaterialShortageError) Unwrap() error { return ErrInsufficientStock }
