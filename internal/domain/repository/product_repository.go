package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// ProductRepository puerto de persistencia para productos (DIP).
// GetForUpdate bloquea la fila del producto: es la unidad mínima de
// serialización de los asientos de stock del mismo producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
}
