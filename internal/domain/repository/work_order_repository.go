package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// WorkOrderRepository puerto de persistencia para órdenes de trabajo.
type WorkOrderRepository interface {
	Create(wo *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	GetForUpdate(id string) (*entity.WorkOrder, error)
	Update(wo *entity.WorkOrder) error
	ListByOrder(orderID string) ([]*entity.WorkOrder, error)
	CountIncompleteByOrder(orderID string) (int, error)
}
