package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/production"
)

// WorkOrderHandler maneja las transiciones de órdenes de trabajo.
type WorkOrderHandler struct {
	uc *production.WorkOrderUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *production.WorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// workOrderResultResponse salida común de las transiciones.
type workOrderResultResponse struct {
	WorkOrder dto.WorkOrderResponse `json:"work_order"`
	Order     dto.OrderResponse     `json:"order"`
	Settled   bool                  `json:"settled"`
	Events    []dto.EventDTO        `json:"events,omitempty"`
}

func (h *WorkOrderHandler) respond(c *fiber.Ctx, result *production.WorkOrderResult) error {
	return c.JSON(workOrderResultResponse{
		WorkOrder: dto.WorkOrderToResponse(result.WorkOrder),
		Order:     dto.OrderToResponse(result.Order, nil),
		Settled:   result.Settled,
		Events:    dto.EventsToDTO(result.Events),
	})
}

// Start godoc
// @Summary      Iniciar orden de trabajo
// @Description  Desde PENDING o PAUSED. El primer inicio de la cadena corre el
//
//	chequeo de materiales y promueve la orden a IN_PROGRESS.
//
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "WorkOrder ID (UUID)"
// @Success      200  {object}  workOrderResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/start [post]
func (h *WorkOrderHandler) Start(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	result, err := h.uc.Start(c.Context(), c.Params("id"), userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return h.respond(c, result)
}

// Pause godoc
// @Summary      Pausar orden de trabajo
// @Description  Solo desde STARTED. Acumula los minutos del intervalo en curso.
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "WorkOrder ID (UUID)"
// @Success      200  {object}  workOrderResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/pause [post]
func (h *WorkOrderHandler) Pause(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	result, err := h.uc.Pause(c.Context(), c.Params("id"), userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return h.respond(c, result)
}

// Complete godoc
// @Summary      Completar orden de trabajo
// @Description  Si es el último paso pendiente, liquida la orden en la misma
//
//	transacción: consume materiales según el snapshot, produce el
//	terminado y marca la orden DONE. Settled=true en ese caso.
//
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "WorkOrder ID (UUID)"
// @Success      200  {object}  workOrderResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/complete [post]
func (h *WorkOrderHandler) Complete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	result, err := h.uc.Complete(c.Context(), c.Params("id"), userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return h.respond(c, result)
}

// UpdateProgress godoc
// @Summary      Actualizar avance (0-100) de una orden de trabajo activa
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "WorkOrder ID (UUID)"
// @Param        body  body  dto.UpdateProgressRequest  true  "progress 0-100"
// @Success      200  {object}  workOrderResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/progress [patch]
func (h *WorkOrderHandler) UpdateProgress(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateProgressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.UpdateProgress(c.Context(), c.Params("id"), in.Progress, userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return h.respond(c, result)
}
