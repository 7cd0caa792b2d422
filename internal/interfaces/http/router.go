package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/production"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	BOMUC        *usecase.BOMUseCase
	WorkCenterUC *usecase.WorkCenterUseCase
	LedgerUC     *stock.LedgerUseCase
	CreateOrder  *production.CreateOrderUseCase
	CancelOrder  *production.CancelOrderUseCase
	WorkOrderUC  *production.WorkOrderUseCase
	Availability *production.AvailabilityChecker
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products + BOM (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.BOMUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Get("/:id/bom", productHandler.GetBOM)
	products.Put("/:id/bom", productHandler.ReplaceBOM)

	// Work centers (protegido)
	centers := protected.Group("/work-centers")
	workCenterHandler := NewWorkCenterHandler(deps.WorkCenterUC)
	centers.Post("/", workCenterHandler.Create)
	centers.Get("/", workCenterHandler.List)

	// Stock ledger (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC)
	stockGroup.Post("/entries", stockHandler.RegisterEntry)
	stockGroup.Get("/:id/balance", stockHandler.GetBalance)
	stockGroup.Get("/:id/entries", stockHandler.ListEntries)
	stockGroup.Get("/:id/audit", stockHandler.Audit)

	// Manufacturing orders (protegido)
	orders := protected.Group("/orders")
	productionHandler := NewProductionHandler(deps.CreateOrder, deps.CancelOrder, deps.Availability)
	orders.Post("/", productionHandler.Create)
	orders.Get("/", productionHandler.List)
	orders.Get("/:id", productionHandler.GetByID)
	orders.Post("/:id/cancel", productionHandler.Cancel)
	orders.Get("/:id/availability", productionHandler.CheckAvailability)

	// Work orders (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/:id/start", workOrderHandler.Start)
	workOrders.Post("/:id/pause", workOrderHandler.Pause)
	workOrders.Post("/:id/complete", workOrderHandler.Complete)
	workOrders.Patch("/:id/progress", workOrderHandler.UpdateProgress)
}
