package repository

import (
	"time"

	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// ManufacturingOrderRepository puerto de persistencia para órdenes de producción.
// UpdateStateIf es la actualización condicional (compare-and-set) que garantiza
// que una transición de estado ocurre a lo sumo una vez frente a concurrencia.
type ManufacturingOrderRepository interface {
	Create(order *entity.ManufacturingOrder) error
	GetByID(id string) (*entity.ManufacturingOrder, error)
	GetForUpdate(id string) (*entity.ManufacturingOrder, error)
	UpdateStateIf(id string, from []string, to string, completedAt *time.Time) (bool, error)
	List(limit, offset int) ([]*entity.ManufacturingOrder, error)
}
