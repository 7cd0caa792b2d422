package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
)

// WorkCenterHandler maneja las peticiones HTTP de centros de trabajo.
type WorkCenterHandler struct {
	uc *usecase.WorkCenterUseCase
}

// NewWorkCenterHandler construye el handler.
func NewWorkCenterHandler(uc *usecase.WorkCenterUseCase) *WorkCenterHandler {
	return &WorkCenterHandler{uc: uc}
}

// Create godoc
// @Summary      Crear centro de trabajo
// @Tags         work-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkCenterRequest  true  "name, capacity_per_hour"
// @Success      201   {object}  dto.WorkCenterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-centers [post]
func (h *WorkCenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	center, err := h.uc.Create(c.Context(), in.Name, in.CapacityPerHour)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WorkCenterToResponse(center))
}

// List godoc
// @Summary      Listar centros de trabajo
// @Tags         work-centers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WorkCenterResponse
// @Router       /api/work-centers [get]
func (h *WorkCenterHandler) List(c *fiber.Ctx) error {
	centers, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.WorkCenterResponse, 0, len(centers))
	for _, wc := range centers {
		out = append(out, dto.WorkCenterToResponse(wc))
	}
	return c.JSON(out)
}
