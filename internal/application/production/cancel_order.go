package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// CancelOrderUseCase cancela una orden de producción abierta. La cancelación
// congela en cascada todas las órdenes de trabajo hermanas: cada transición
// de la máquina de estados valida que la orden padre siga abierta.
type CancelOrderUseCase struct {
	txRunner TxRunner
	events   EventPublisher
	now      func() time.Time
}

// NewCancelOrderUseCase construye el caso de uso.
func NewCancelOrderUseCase(txRunner TxRunner, events EventPublisher) *CancelOrderUseCase {
	return &CancelOrderUseCase{txRunner: txRunner, events: events, now: time.Now}
}

// Cancel pasa la orden a CANCELED (solo desde PLANNED o IN_PROGRESS).
func (uc *CancelOrderUseCase) Cancel(ctx context.Context, orderID, actor string) (*entity.ManufacturingOrder, []entity.DomainEvent, error) {
	if orderID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	now := uc.now()
	var order *entity.ManufacturingOrder

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		order, err = orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsOpen() {
			return domain.ErrStateConflict
		}
		ok, err := orderRepo.UpdateStateIf(orderID,
			[]string{entity.OrderStatePlanned, entity.OrderStateInProgress},
			entity.OrderStateCanceled, nil)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrStateConflict
		}
		order.State = entity.OrderStateCanceled
		order.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	events := []entity.DomainEvent{{
		ID:        uuid.New().String(),
		Type:      entity.EventOrderCanceled,
		OrderID:   order.ID,
		ProductID: order.ProductID,
		Actor:     actor,
		At:        now,
	}}
	uc.events.Publish(ctx, events...)
	return order, events, nil
}
