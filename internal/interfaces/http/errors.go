package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
)

// shortageResponse cuerpo 409 con el detalle de faltantes por material.
type shortageResponse struct {
	Code      string                    `json:"code"`
	Message   string                    `json:"message"`
	OrderID   string                    `json:"order_id"`
	Shortages []domain.MaterialShortage `json:"shortages"`
}

// respondDomainError mapea errores de dominio a códigos HTTP. Todos los
// handlers protegidos comparten esta tabla.
func respondDomainError(c *fiber.Ctx, err error) error {
	var shortage *domain.MaterialShortageError
	if errors.As(err, &shortage) {
		return c.Status(fiber.StatusConflict).JSON(shortageResponse{
			Code:      "MATERIAL_SHORTAGE",
			Message:   "stock insuficiente para iniciar la orden",
			OrderID:   shortage.OrderID,
			Shortages: shortage.Shortages,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrNotFinished):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOT_FINISHED", Message: "el producto no es un producto terminado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrStateConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STATE_CONFLICT", Message: "transición no permitida desde el estado actual"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrSettlementFailed):
		// La transacción hizo rollback completo: la orden sigue abierta y se puede reintentar.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SETTLEMENT_FAILED", Message: "liquidación fallida, reintente la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
