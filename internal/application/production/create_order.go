package production

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/routing"
)

// CreateOrderUseCase la fábrica de órdenes: crea una orden de producción con
// su cadena completa de órdenes de trabajo en una sola transacción. No hay
// cadenas parciales observables.
type CreateOrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.ManufacturingOrderRepository
	workRepo  repository.WorkOrderRepository
	events    EventPublisher
	now       func() time.Time
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.ManufacturingOrderRepository,
	workRepo repository.WorkOrderRepository,
	events EventPublisher,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		workRepo:  workRepo,
		events:    events,
		now:       time.Now,
	}
}

// CreateOrderInput entrada para crear una orden de producción.
type CreateOrderInput struct {
	ProductID string
	Quantity  decimal.Decimal
	Name      string
	Deadline  *time.Time
	Actor     string
}

// OrderWithSteps orden de producción con su cadena de órdenes de trabajo.
type OrderWithSteps struct {
	Order      *entity.ManufacturingOrder
	WorkOrders []*entity.WorkOrder
}

// Create valida la entrada, captura el snapshot de la BOM activa (copia, no
// referencia), resuelve la ruta y crea la orden más una orden de trabajo por
// paso, todo en una transacción.
func (uc *CreateOrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*OrderWithSteps, []entity.DomainEvent, error) {
	if input.ProductID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, nil, domain.ErrInvalidInput
	}

	now := uc.now()
	result := &OrderWithSteps{}

	err := uc.txRunner.RunCreate(ctx, func(
		orderRepo repository.ManufacturingOrderRepository,
		workRepo repository.WorkOrderRepository,
		productRepo repository.ProductRepository,
		bomRepo repository.BOMRepository,
		routeRepo repository.RouteRepository,
		centerRepo repository.WorkCenterRepository,
	) error {
		product, err := productRepo.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.IsFinished {
			return domain.ErrNotFinished
		}

		// Snapshot de la BOM activa, validado una sola vez aquí.
		bom, err := bomRepo.GetActiveByProduct(product.ID)
		if err != nil {
			return err
		}
		for _, line := range bom {
			if line.MaterialID == "" || !line.QuantityPerUnit.GreaterThan(decimal.Zero) {
				return fmt.Errorf("línea BOM inválida para material %q: %w", line.MaterialID, domain.ErrInvalidInput)
			}
		}

		configured, err := routeRepo.GetStepsByProduct(product.ID)
		if err != nil {
			return err
		}
		steps := routing.Resolve(product.IsFinished, configured)

		centers, err := centerRepo.List()
		if err != nil {
			return err
		}

		order := &entity.ManufacturingOrder{
			ID:          uuid.New().String(),
			OrderNumber: newOrderNumber(now),
			Name:        input.Name,
			ProductID:   product.ID,
			Quantity:    input.Quantity,
			State:       entity.OrderStatePlanned,
			Deadline:    input.Deadline,
			BOMSnapshot: entity.CloneBOM(bom),
			CreatedBy:   input.Actor,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if order.Name == "" {
			order.Name = order.OrderNumber
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		for i, step := range steps {
			wc := routing.MatchWorkCenter(step, centers)
			wo := &entity.WorkOrder{
				ID:             uuid.New().String(),
				OrderID:        order.ID,
				Step:           step,
				Position:       i + 1,
				Status:         entity.WorkOrderPending,
				EstimatedHours: estimatedHours(input.Quantity, wc),
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if wc != nil {
				wo.WorkCenterID = wc.ID
			}
			if err := workRepo.Create(wo); err != nil {
				return err
			}
			result.WorkOrders = append(result.WorkOrders, wo)
		}
		result.Order = order
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	events := []entity.DomainEvent{{
		ID:        uuid.New().String(),
		Type:      entity.EventOrderCreated,
		OrderID:   result.Order.ID,
		ProductID: result.Order.ProductID,
		Actor:     input.Actor,
		At:        now,
	}}
	uc.events.Publish(ctx, events...)
	return result, events, nil
}

// Get devuelve una orden con sus órdenes de trabajo.
func (uc *CreateOrderUseCase) Get(ctx context.Context, orderID string) (*OrderWithSteps, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	wos, err := uc.workRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderWithSteps{Order: order, WorkOrders: wos}, nil
}

// List lista órdenes de producción con paginación.
func (uc *CreateOrderUseCase) List(ctx context.Context, limit, offset int) ([]*entity.ManufacturingOrder, error) {
	return uc.orderRepo.List(limit, offset)
}

// newOrderNumber genera un número de orden único y resistente a colisiones:
// OP-<fecha>-<fragmento de uuid>.
func newOrderNumber(t time.Time) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("OP-%s-%s", t.Format("20060102"), frag)
}

// estimatedHours horas estimadas del paso: cantidad / capacidad del centro.
// Sin centro o sin capacidad configurada, 1 hora por defecto.
func estimatedHours(quantity decimal.Decimal, wc *entity.WorkCenter) decimal.Decimal {
	if wc == nil || !wc.CapacityPerHour.GreaterThan(decimal.Zero) {
		return decimal.NewFromInt(1)
	}
	return quantity.Div(wc.CapacityPerHour)
}
