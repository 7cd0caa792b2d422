package production

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// AvailabilityChecker evalúa si hay stock suficiente para producir una orden
// según su snapshot de BOM y los saldos vigentes del libro.
// El resultado es consultivo: entre el chequeo y el consumo otro actor puede
// mover el stock. La autoridad final es el motor de liquidación.
type AvailabilityChecker struct {
	orderRepo repository.ManufacturingOrderRepository
	entryRepo repository.StockEntryRepository
}

// NewAvailabilityChecker construye el verificador.
func NewAvailabilityChecker(orderRepo repository.ManufacturingOrderRepository, entryRepo repository.StockEntryRepository) *AvailabilityChecker {
	return &AvailabilityChecker{orderRepo: orderRepo, entryRepo: entryRepo}
}

// AvailabilityResult resultado del chequeo de materiales de una orden.
type AvailabilityResult struct {
	CanProduce bool
	Shortages  []domain.MaterialShortage
}

// Check calcula los faltantes de una orden: por cada línea del snapshot,
// requerido = cantidadPorUnidad × cantidadOrden y disponible = saldo vigente
// del material (0 si no tiene asientos).
func (c *AvailabilityChecker) Check(ctx context.Context, orderID string) (*AvailabilityResult, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := c.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return checkSnapshot(order, c.entryRepo)
}

// checkSnapshot evalúa el snapshot contra el libro usando el repositorio que
// reciba: con repos de una tx, el chequeo participa de esa transacción
// (lo usa Start en el primer arranque de la cadena).
func checkSnapshot(order *entity.ManufacturingOrder, entryRepo repository.StockEntryRepository) (*AvailabilityResult, error) {
	var shortages []domain.MaterialShortage
	for _, line := range order.BOMSnapshot {
		required := line.QuantityPerUnit.Mul(order.Quantity)
		available := decimal.Zero
		last, err := entryRepo.GetLatestByProduct(line.MaterialID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			available = last.BalanceAfter
		}
		shortage := required.Sub(available)
		if shortage.GreaterThan(decimal.Zero) {
			shortages = append(shortages, domain.MaterialShortage{
				MaterialID: line.MaterialID,
				Required:   required,
				Available:  available,
				Shortage:   shortage,
			})
		}
	}
	return &AvailabilityResult{CanProduce: len(shortages) == 0, Shortages: shortages}, nil
}
