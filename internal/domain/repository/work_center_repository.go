package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// WorkCenterRepository puerto de persistencia para centros de trabajo.
type WorkCenterRepository interface {
	Create(center *entity.WorkCenter) error
	List() ([]*entity.WorkCenter, error)
}
