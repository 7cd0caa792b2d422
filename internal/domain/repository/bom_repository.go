package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// BOMRepository puerto para la lista de materiales activa de un producto.
// La BOM activa es editable; las órdenes en curso usan su propio snapshot.
type BOMRepository interface {
	GetActiveByProduct(productID string) ([]entity.BOMLine, error)
	ReplaceForProduct(productID string, lines []entity.BOMLine) error
}
