package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/ledger"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// PostInput datos para asentar un movimiento en el libro de stock.
type PostInput struct {
	ProductID  string
	Direction  string
	Quantity   decimal.Decimal
	SourceType string
	SourceID   string
	Note       string
	CreatedBy  string
}

// PostInTx asienta un movimiento usando los repositorios proporcionados
// (misma transacción del caller). Bloquea la fila del producto (SELECT FOR
// UPDATE) para serializar el tail del libro de ese producto, lee el asiento
// más reciente y escribe el nuevo con su saldo resultante.
// Lo usa el caso de uso de stock y el motor de liquidación de producción.
func PostInTx(
	entryRepo repository.StockEntryRepository,
	productRepo repository.ProductRepository,
	input PostInput,
	now time.Time,
) (*entity.StockEntry, error) {
	product, err := productRepo.GetForUpdate(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	prev := decimal.Zero
	last, err := entryRepo.GetLatestByProduct(input.ProductID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		prev = last.BalanceAfter
	}

	change, balanceAfter, err := ledger.Post(prev, input.Direction, input.Quantity)
	if err != nil {
		return nil, err
	}

	entry := &entity.StockEntry{
		ID:           uuid.New().String(),
		ProductID:    input.ProductID,
		Direction:    input.Direction,
		Quantity:     input.Quantity,
		Change:       change,
		BalanceAfter: balanceAfter,
		SourceType:   input.SourceType,
		SourceID:     input.SourceID,
		Note:         input.Note,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    now,
	}
	if err := entryRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
