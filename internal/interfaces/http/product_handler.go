package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos y su BOM.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	bomUC *usecase.BOMUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, bomUC *usecase.BOMUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, bomUC: bomUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "sku, name, is_finished, min_stock"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(c.Context(), usecase.CreateProductInput{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		IsFinished:  in.IsFinished,
		MinStock:    in.MinStock,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductToResponse(product))
}

// GetByID godoc
// @Summary      Consultar producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID (UUID)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ProductToResponse(product))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100, por defecto 20"
// @Param        offset  query  int  false  "por defecto 0"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	products, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductToResponse(p))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar metadatos del producto (SKU e is_finished son inmutables)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Product ID (UUID)"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Update(c.Context(), c.Params("id"), usecase.UpdateProductInput{
		Name:        in.Name,
		Description: in.Description,
		MinStock:    in.MinStock,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ProductToResponse(product))
}

// GetBOM godoc
// @Summary      BOM activa del producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID (UUID)"
// @Success      200  {array}  dto.BOMLineDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bom [get]
func (h *ProductHandler) GetBOM(c *fiber.Ctx) error {
	lines, err := h.bomUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.BOMLinesToDTO(lines))
}

// ReplaceBOM godoc
// @Summary      Reemplazar la BOM activa del producto
// @Description  No afecta los snapshots de órdenes ya creadas.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Product ID (UUID)"
// @Param        body  body  dto.ReplaceBOMRequest  true  "líneas material + cantidad por unidad"
// @Success      200  {array}  dto.BOMLineDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bom [put]
func (h *ProductHandler) ReplaceBOM(c *fiber.Ctx) error {
	var in dto.ReplaceBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productID := c.Params("id")
	if err := h.bomUC.Replace(c.Context(), productID, dto.BOMLinesToEntity(in.Lines)); err != nil {
		return respondDomainError(c, err)
	}
	lines, err := h.bomUC.Get(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.BOMLinesToDTO(lines))
}
