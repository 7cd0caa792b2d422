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

// ProductUseCase CRUD de productos. La identidad (SKU, IsFinished) es
// inmutable tras la creación; el stock se mueve solo vía asientos del libro.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProductInput entrada para crear un producto.
type CreateProductInput struct {
	SKU         string
	Name        string
	Description string
	IsFinished  bool
	MinStock    decimal.Decimal
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.SKU == "" || input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.MinStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		IsFinished:  input.IsFinished,
		MinStock:    input.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// UpdateProductInput campos mutables de un producto (nil = sin cambio).
type UpdateProductInput struct {
	Name        *string
	Description *string
	MinStock    *decimal.Decimal
}

// Update modifica los metadatos mutables de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.MinStock != nil {
		if input.MinStock.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *input.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
