package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/ledger"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// auditPageSize tamaño de página al releer la cadena completa de un producto.
const auditPageSize = 500

// LedgerUseCase operaciones sobre el libro de stock: asientos manuales o de
// carga inicial, consulta de saldo, listado y auditoría de la cadena.
// El libro nunca edita ni borra un asiento.
type LedgerUseCase struct {
	txRunner    TxRunner
	entryRepo   repository.StockEntryRepository
	productRepo repository.ProductRepository
	events      EventPublisher
	now         func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	entryRepo repository.StockEntryRepository,
	productRepo repository.ProductRepository,
	events EventPublisher,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		entryRepo:   entryRepo,
		productRepo: productRepo,
		events:      events,
		now:         time.Now,
	}
}

// RegisterEntry asienta un movimiento manual (ajuste o carga inicial) de
// forma transaccional y publica el evento stock.posted.
func (uc *LedgerUseCase) RegisterEntry(ctx context.Context, input PostInput) (*entity.StockEntry, []entity.DomainEvent, error) {
	if input.ProductID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, nil, domain.ErrInvalidInput
	}
	if input.Direction != entity.EntryDirectionIN && input.Direction != entity.EntryDirectionOUT {
		return nil, nil, domain.ErrInvalidInput
	}
	if input.SourceType == "" {
		input.SourceType = entity.EntrySourceManual
	}

	now := uc.now()
	var entry *entity.StockEntry
	err := uc.txRunner.RunStock(ctx, func(
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		entry, err = PostInTx(entryRepo, productRepo, input, now)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	events := []entity.DomainEvent{{
		ID:        uuid.New().String(),
		Type:      entity.EventStockPosted,
		ProductID: entry.ProductID,
		Actor:     input.CreatedBy,
		At:        now,
	}}
	uc.events.Publish(ctx, events...)
	return entry, events, nil
}

// GetBalance devuelve el saldo vigente de un producto: el BalanceAfter de su
// asiento más reciente, o cero si no tiene asientos.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, productID string) (decimal.Decimal, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return decimal.Zero, err
	}
	if product == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	last, err := uc.entryRepo.GetLatestByProduct(productID)
	if err != nil {
		return decimal.Zero, err
	}
	if last == nil {
		return decimal.Zero, nil
	}
	return last.BalanceAfter, nil
}

// ListEntries lista los asientos de un producto en orden de creación.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, productID string, limit, offset int) ([]*entity.StockEntry, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.entryRepo.ListByProduct(productID, limit, offset)
}

// Audit relee la cadena completa de un producto desde cero y verifica que
// cada BalanceAfter coincide con el saldo acumulado (consistencia de replay).
func (uc *LedgerUseCase) Audit(ctx context.Context, productID string) error {
	if productID == "" {
		return domain.ErrInvalidInput
	}
	var all []*entity.StockEntry
	for offset := 0; ; offset += auditPageSize {
		page, err := uc.entryRepo.ListByProduct(productID, auditPageSize, offset)
		if err != nil {
			return err
		}
		all = append(all, page...)
		if len(page) < auditPageSize {
			break
		}
	}
	return ledger.Verify(all)
}
