package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido).
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar asiento manual de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "product_id, direction (IN/OUT), quantity, note"
// @Success      201   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) RegisterEntry(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, _, err := h.uc.RegisterEntry(c.Context(), stock.PostInput{
		ProductID: in.ProductID,
		Direction: in.Direction,
		Quantity:  in.Quantity,
		Note:      in.Note,
		CreatedBy: userID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockEntryToResponse(entry))
}

// GetBalance godoc
// @Summary      Saldo vigente de un producto
// @Description  BalanceAfter del asiento más reciente; 0 si el libro está vacío.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/balance [get]
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	productID := c.Params("id")
	balance, err := h.uc.GetBalance(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"product_id": productID, "balance": balance})
}

// ListEntries godoc
// @Summary      Historial del libro de stock de un producto
// @Description  Orden de creación ascendente (seq), paginado.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Product ID (UUID)"
// @Param        limit   query  int     false  "máx. 100, por defecto 20"
// @Param        offset  query  int     false  "por defecto 0"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/stock/{id}/entries [get]
func (h *StockHandler) ListEntries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	entries, err := h.uc.ListEntries(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockEntryToResponse(e))
	}
	return c.JSON(out)
}

// Audit godoc
// @Summary      Auditar la cadena de saldos de un producto
// @Description  Reconstruye el libro desde cero y verifica cada BalanceAfter.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/audit [get]
func (h *StockHandler) Audit(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.uc.Audit(c.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
			return respondDomainError(c, err)
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LEDGER_CORRUPT", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"product_id": productID, "status": "ok"})
}
