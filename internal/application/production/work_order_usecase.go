package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// WorkOrderUseCase la máquina de estados de las órdenes de trabajo:
// PENDING→STARTED→PAUSED→COMPLETED, con la liquidación disparada al completar
// la última hermana. Cada transición corre en su propia transacción con
// bloqueo de fila (orden de trabajo y orden padre, siempre en ese orden).
type WorkOrderUseCase struct {
	txRunner TxRunner
	events   EventPublisher
	now      func() time.Time
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(txRunner TxRunner, events EventPublisher) *WorkOrderUseCase {
	return &WorkOrderUseCase{txRunner: txRunner, events: events, now: time.Now}
}

// WorkOrderResult orden de trabajo mutada, la orden padre si también cambió,
// y los eventos emitidos para el notificador externo.
type WorkOrderResult struct {
	WorkOrder *entity.WorkOrder
	Order     *entity.ManufacturingOrder
	Settled   bool
	Events    []entity.DomainEvent
}

// Start arranca una orden de trabajo (desde PENDING o PAUSED). En el primer
// arranque de la cadena (orden aún PLANNED) corre el chequeo consultivo de
// materiales dentro de la misma transacción y promueve la orden a IN_PROGRESS.
func (uc *WorkOrderUseCase) Start(ctx context.Context, woID, actor string) (*WorkOrderResult, error) {
	if woID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	result := &WorkOrderResult{}

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error {
		wo, order, err := lockPair(workRepo, orderRepo, woID)
		if err != nil {
			return err
		}
		if wo.Status != entity.WorkOrderPending && wo.Status != entity.WorkOrderPaused {
			return domain.ErrStateConflict
		}
		if !order.IsOpen() {
			return domain.ErrStateConflict
		}

		if order.State == entity.OrderStatePlanned {
			check, err := checkSnapshot(order, entryRepo)
			if err != nil {
				return err
			}
			if !check.CanProduce {
				return &domain.MaterialShortageError{OrderID: order.ID, Shortages: check.Shortages}
			}
			ok, err := orderRepo.UpdateStateIf(order.ID,
				[]string{entity.OrderStatePlanned}, entity.OrderStateInProgress, nil)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrStateConflict
			}
			order.State = entity.OrderStateInProgress
			order.UpdatedAt = now
		}

		wo.Status = entity.WorkOrderStarted
		wo.StartedAt = &now
		wo.UpdatedAt = now
		if err := workRepo.Update(wo); err != nil {
			return err
		}
		result.WorkOrder = wo
		result.Order = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Events = uc.emit(ctx, entity.EventWorkOrderStarted, result, actor, now)
	return result, nil
}

// Pause pausa una orden de trabajo STARTED. Acumula el intervalo trabajado en
// ActualMinutes y limpia StartedAt: un resume posterior abre un intervalo
// nuevo (el tiempo real es la suma de intervalos, no el span de reloj).
func (uc *WorkOrderUseCase) Pause(ctx context.Context, woID, actor string) (*WorkOrderResult, error) {
	if woID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	result := &WorkOrderResult{}

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error {
		wo, order, err := lockPair(workRepo, orderRepo, woID)
		if err != nil {
			return err
		}
		if wo.Status != entity.WorkOrderStarted {
			return domain.ErrStateConflict
		}
		if !order.IsOpen() {
			return domain.ErrStateConflict
		}

		accumulate(wo, now)
		wo.Status = entity.WorkOrderPaused
		wo.StartedAt = nil
		wo.UpdatedAt = now
		if err := workRepo.Update(wo); err != nil {
			return err
		}
		result.WorkOrder = wo
		result.Order = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Events = uc.emit(ctx, entity.EventWorkOrderPaused, result, actor, now)
	return result, nil
}

// Complete completa una orden de trabajo (desde STARTED o PAUSED). Si era la
// última hermana incompleta, liquida la orden de forma síncrona en la misma
// transacción: el bloqueo de la fila de la orden más la actualización
// condicional garantizan que la liquidación ocurre exactamente una vez.
func (uc *WorkOrderUseCase) Complete(ctx context.Context, woID, actor string) (*WorkOrderResult, error) {
	if woID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	result := &WorkOrderResult{}
	var settleEvents []entity.DomainEvent

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error {
		wo, order, err := lockPair(workRepo, orderRepo, woID)
		if err != nil {
			return err
		}
		if wo.Status != entity.WorkOrderStarted && wo.Status != entity.WorkOrderPaused {
			return domain.ErrStateConflict
		}
		if !order.IsOpen() {
			return domain.ErrStateConflict
		}

		accumulate(wo, now)
		wo.Status = entity.WorkOrderCompleted
		wo.Progress = 100
		wo.StartedAt = nil
		wo.CompletedAt = &now
		wo.UpdatedAt = now
		if err := workRepo.Update(wo); err != nil {
			return err
		}

		remaining, err := workRepo.CountIncompleteByOrder(order.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			settleEvents, err = settle(orderRepo, entryRepo, productRepo, order, actor, now)
			if err != nil {
				return err
			}
			result.Settled = true
		}
		result.WorkOrder = wo
		result.Order = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Events = uc.emit(ctx, entity.EventWorkOrderCompleted, result, actor, now)
	if len(settleEvents) > 0 {
		result.Events = append(result.Events, settleEvents...)
		uc.events.Publish(ctx, settleEvents...)
	}
	return result, nil
}

// UpdateProgress fija el avance (0-100, con clamp) de una orden de trabajo
// STARTED o PAUSED. El avance es informativo e independiente del estado.
func (uc *WorkOrderUseCase) UpdateProgress(ctx context.Context, woID string, progress int, actor string) (*WorkOrderResult, error) {
	if woID == "" {
		return nil, domain.ErrInvalidInput
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	now := uc.now()
	result := &WorkOrderResult{}

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error {
		wo, order, err := lockPair(workRepo, orderRepo, woID)
		if err != nil {
			return err
		}
		if wo.Status != entity.WorkOrderStarted && wo.Status != entity.WorkOrderPaused {
			return domain.ErrStateConflict
		}
		if !order.IsOpen() {
			return domain.ErrStateConflict
		}

		wo.Progress = progress
		wo.UpdatedAt = now
		if err := workRepo.Update(wo); err != nil {
			return err
		}
		result.WorkOrder = wo
		result.Order = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Events = uc.emit(ctx, entity.EventWorkOrderProgress, result, actor, now)
	return result, nil
}

// lockPair bloquea la orden de trabajo y su orden padre (siempre en ese
// orden, para evitar deadlocks entre transiciones concurrentes).
func lockPair(
	workRepo repository.WorkOrderRepository,
	orderRepo repository.ManufacturingOrderRepository,
	woID string,
) (*entity.WorkOrder, *entity.ManufacturingOrder, error) {
	wo, err := workRepo.GetForUpdate(woID)
	if err != nil {
		return nil, nil, err
	}
	if wo == nil {
		return nil, nil, domain.ErrNotFound
	}
	order, err := orderRepo.GetForUpdate(wo.OrderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	return wo, order, nil
}

// accumulate suma el intervalo en curso a ActualMinutes si la orden de
// trabajo tiene un arranque abierto.
func accumulate(wo *entity.WorkOrder, now time.Time) {
	if wo.StartedAt == nil {
		return
	}
	elapsed := decimal.NewFromFloat(now.Sub(*wo.StartedAt).Minutes())
	wo.ActualMinutes = wo.ActualMinutes.Add(elapsed)
}

// emit arma el evento de la transición y lo publica fire-and-forget.
func (uc *WorkOrderUseCase) emit(ctx context.Context, eventType string, result *WorkOrderResult, actor string, at time.Time) []entity.DomainEvent {
	ev := entity.DomainEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		OrderID:     result.WorkOrder.OrderID,
		WorkOrderID: result.WorkOrder.ID,
		Actor:       actor,
		At:          at,
	}
	uc.events.Publish(ctx, ev)
	return []entity.DomainEvent{ev}
}
