package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// WorkCenterUseCase alta y listado de centros de trabajo.
type WorkCenterUseCase struct {
	centerRepo repository.WorkCenterRepository
}

// NewWorkCenterUseCase construye el caso de uso.
func NewWorkCenterUseCase(centerRepo repository.WorkCenterRepository) *WorkCenterUseCase {
	return &WorkCenterUseCase{centerRepo: centerRepo}
}

// Create registra un centro de trabajo. CapacityPerHour cero significa sin
// capacidad configurada (los pasos asignados estiman 1 hora por defecto).
func (uc *WorkCenterUseCase) Create(ctx context.Context, name string, capacityPerHour decimal.Decimal) (*entity.WorkCenter, error) {
	if name == "" || capacityPerHour.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	wc := &entity.WorkCenter{
		ID:              uuid.New().String(),
		Name:            name,
		CapacityPerHour: capacityPerHour,
		CreatedAt:       time.Now(),
	}
	if err := uc.centerRepo.Create(wc); err != nil {
		return nil, err
	}
	return wc, nil
}

// List devuelve todos los centros de trabajo.
func (uc *WorkCenterUseCase) List(ctx context.Context) ([]*entity.WorkCenter, error) {
	return uc.centerRepo.List()
}
