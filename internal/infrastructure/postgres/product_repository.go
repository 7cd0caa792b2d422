package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación PostgreSQL del repositorio de productos.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el repo sobre un pool o una transacción.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, sku, name, description, is_finished, min_stock, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.IsFinished,
		&p.MinStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, is_finished, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		product.IsFinished, product.MinStock, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: SKU %s ya existe", domain.ErrDuplicate, product.SKU)
		}
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
// Sobre el pool (sin tx) el lock se libera de inmediato y no sirve de nada.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.db.QueryRow(context.Background(), query, id))
}

func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, min_stock = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.MinStock, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, product.ID)
	}
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.IsFinished,
			&p.MinStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
