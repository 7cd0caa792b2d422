package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// BOMUseCase mantenimiento de la lista de materiales activa de un producto
// terminado. Las órdenes en curso no se afectan: trabajan con su snapshot.
type BOMUseCase struct {
	productRepo repository.ProductRepository
	bomRepo     repository.BOMRepository
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(productRepo repository.ProductRepository, bomRepo repository.BOMRepository) *BOMUseCase {
	return &BOMUseCase{productRepo: productRepo, bomRepo: bomRepo}
}

// Replace reemplaza la BOM activa de un producto terminado.
func (uc *BOMUseCase) Replace(ctx context.Context, productID string, lines []entity.BOMLine) error {
	if productID == "" {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.IsFinished {
		return domain.ErrNotFinished
	}
	for _, line := range lines {
		if line.MaterialID == "" || line.MaterialID == productID {
			return domain.ErrInvalidInput
		}
		if !line.QuantityPerUnit.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		material, err := uc.productRepo.GetByID(line.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
	}
	return uc.bomRepo.ReplaceForProduct(productID, lines)
}

// Get devuelve la BOM activa de un producto.
func (uc *BOMUseCase) Get(ctx context.Context, productID string) ([]entity.BOMLine, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.bomRepo.GetActiveByProduct(productID)
}
