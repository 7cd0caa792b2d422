package production

import (
	"context"

	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el núcleo de
// producción: creación de órdenes y transiciones con liquidación.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error) error

	RunCreate(ctx context.Context, fn func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		productRepo repository.ProductRepository,
		bomRepo repository.BOMRepository,
		routeRepo repository.RouteRepository,
		centerRepo repository.WorkCenterRepository,
	) error) error
}

// EventPublisher entrega eventos de dominio al notificador externo.
// La entrega es best-effort: el publicador nunca falla ni bloquea la
// transición que originó el evento.
type EventPublisher interface {
	Publish(ctx context.Context, events ...entity.DomainEvent)
}
