package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// StockEntryRepository puerto de persistencia del libro de stock.
// Solo inserta y lee: el libro es append-only, sin update ni delete.
// El orden de lectura es Seq ascendente (orden de creación, no timestamp).
type StockEntryRepository interface {
	Create(entry *entity.StockEntry) error
	GetLatestByProduct(productID string) (*entity.StockEntry, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockEntry, error)
}
