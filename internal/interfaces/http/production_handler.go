package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/production"
)

// ProductionHandler maneja las peticiones HTTP de órdenes de producción.
type ProductionHandler struct {
	createUC     *production.CreateOrderUseCase
	cancelUC     *production.CancelOrderUseCase
	availability *production.AvailabilityChecker
}

// NewProductionHandler construye el handler.
func NewProductionHandler(
	createUC *production.CreateOrderUseCase,
	cancelUC *production.CancelOrderUseCase,
	availability *production.AvailabilityChecker,
) *ProductionHandler {
	return &ProductionHandler{createUC: createUC, cancelUC: cancelUC, availability: availability}
}

// Create godoc
// @Summary      Crear orden de producción
// @Description  Crea la orden en PLANNED con snapshot inmutable de la BOM activa
//
//	y una orden de trabajo PENDING por cada paso de la ruta, todo en
//	una sola transacción.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "product_id, quantity, name opcional, deadline opcional"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, _, err := h.createUC.Create(c.Context(), production.CreateOrderInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Name:      in.Name,
		Deadline:  in.Deadline,
		Actor:     userID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderToResponse(result.Order, result.WorkOrders))
}

// GetByID godoc
// @Summary      Consultar orden con sus órdenes de trabajo
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Order ID (UUID)"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.createUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.OrderToResponse(result.Order, result.WorkOrders))
}

// List godoc
// @Summary      Listar órdenes de producción
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100, por defecto 20"
// @Param        offset  query  int  false  "por defecto 0"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	orders, err := h.createUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderToResponse(o, nil))
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar orden de producción
// @Description  Solo órdenes abiertas (PLANNED o IN_PROGRESS). Las órdenes de
//
//	trabajo quedan congeladas: ninguna transición avanza sobre una
//	orden cancelada.
//
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Order ID (UUID)"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *ProductionHandler) Cancel(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	order, _, err := h.cancelUC.Cancel(c.Context(), c.Params("id"), userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.OrderToResponse(order, nil))
}

// CheckAvailability godoc
// @Summary      Chequeo consultivo de materiales
// @Description  Compara el snapshot de la BOM contra los saldos vigentes. No
//
//	reserva stock: el resultado puede quedar obsoleto de inmediato.
//
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Order ID (UUID)"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/availability [get]
func (h *ProductionHandler) CheckAvailability(c *fiber.Ctx) error {
	result, err := h.availability.Check(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AvailabilityResponse{
		CanProduce: result.CanProduce,
		Shortages:  result.Shortages,
	})
}
