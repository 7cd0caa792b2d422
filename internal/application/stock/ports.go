package stock

import (
	"context"

	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del libro de stock atados a esa tx. Leer el saldo y escribir
// el asiento siguiente deben ocurrir en la misma transacción.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// EventPublisher entrega eventos de dominio best-effort (nunca falla la operación).
type EventPublisher interface {
	Publish(ctx context.Context, events ...entity.DomainEvent)
}
