package production

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// settle el motor de consumo/producción. Se ejecuta dentro de la transacción
// del caller cuando la última orden de trabajo hermana queda completada:
// una salida por línea del snapshot, una entrada del producto terminado y el
// cierre de la orden — una sola unidad atómica. Si algo falla, la transacción
// se revierte completa y la orden queda en su estado previo (reintentable).
func settle(
	orderRepo repository.ManufacturingOrderRepository,
	entryRepo repository.StockEntryRepository,
	productRepo repository.ProductRepository,
	order *entity.ManufacturingOrder,
	actor string,
	now time.Time,
) ([]entity.DomainEvent, error) {
	var events []entity.DomainEvent

	// Consumo: una salida por material del snapshot.
	for _, line := range order.BOMSnapshot {
		qty := line.QuantityPerUnit.Mul(order.Quantity)
		entry, err := stock.PostInTx(entryRepo, productRepo, stock.PostInput{
			ProductID:  line.MaterialID,
			Direction:  entity.EntryDirectionOUT,
			Quantity:   qty,
			SourceType: entity.EntrySourceSettlement,
			SourceID:   order.ID,
			CreatedBy:  actor,
		}, now)
		if err != nil {
			return nil, fmt.Errorf("%w: consumo del material %s: %v", domain.ErrSettlementFailed, line.MaterialID, err)
		}
		events = append(events, stockPostedEvent(entry.ProductID, order.ID, actor, now))
	}

	// Producción: una entrada del producto terminado.
	entry, err := stock.PostInTx(entryRepo, productRepo, stock.PostInput{
		ProductID:  order.ProductID,
		Direction:  entity.EntryDirectionIN,
		Quantity:   order.Quantity,
		SourceType: entity.EntrySourceSettlement,
		SourceID:   order.ID,
		CreatedBy:  actor,
	}, now)
	if err != nil {
		return nil, fmt.Errorf("%w: producción de %s: %v", domain.ErrSettlementFailed, order.ProductID, err)
	}
	events = append(events, stockPostedEvent(entry.ProductID, order.ID, actor, now))

	// Cierre condicional: exactamente un caller gana esta transición.
	ok, err := orderRepo.UpdateStateIf(
		order.ID,
		[]string{entity.OrderStatePlanned, entity.OrderStateInProgress},
		entity.OrderStateDone,
		&now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: cierre de la orden %s: %v", domain.ErrSettlementFailed, order.ID, err)
	}
	if !ok {
		return nil, domain.ErrStateConflict
	}
	order.State = entity.OrderStateDone
	order.CompletedAt = &now
	order.UpdatedAt = now

	events = append(events, entity.DomainEvent{
		ID:        uuid.New().String(),
		Type:      entity.EventOrderCompleted,
		OrderID:   order.ID,
		ProductID: order.ProductID,
		Actor:     actor,
		At:        now,
	})
	return events, nil
}

func stockPostedEvent(productID, orderID, actor string, at time.Time) entity.DomainEvent {
	return entity.DomainEvent{
		ID:        uuid.New().String(),
		Type:      entity.EventStockPosted,
		OrderID:   orderID,
		ProductID: productID,
		Actor:     actor,
		At:        at,
	}
}
