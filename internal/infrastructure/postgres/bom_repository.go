package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación PostgreSQL de la BOM activa por producto.
type BOMRepo struct {
	db Querier
}

func NewBOMRepository(db Querier) *BOMRepo {
	return &BOMRepo{db: db}
}

func (r *BOMRepo) GetActiveByProduct(productID string) ([]entity.BOMLine, error) {
	query := `
		SELECT material_id, quantity_per_unit
		FROM bom_lines
		WHERE product_id = $1
		ORDER BY position`

	rows, err := r.db.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("leer BOM: %w", err)
	}
	defer rows.Close()

	var lines []entity.BOMLine
	for rows.Next() {
		var l entity.BOMLine
		if err := rows.Scan(&l.MaterialID, &l.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan línea BOM: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ReplaceForProduct reemplaza la BOM activa completa en un solo statement
// (CTE de borrado + insert) para que la edición sea atómica incluso fuera
// de una transacción explícita.
func (r *BOMRepo) ReplaceForProduct(productID string, lines []entity.BOMLine) error {
	if len(lines) == 0 {
		_, err := r.db.Exec(context.Background(),
			`DELETE FROM bom_lines WHERE product_id = $1`, productID)
		if err != nil {
			return fmt.Errorf("vaciar BOM: %w", err)
		}
		return nil
	}

	materials := make([]string, len(lines))
	quantities := make([]decimal.Decimal, len(lines))
	positions := make([]int, len(lines))
	for i, l := range lines {
		materials[i] = l.MaterialID
		quantities[i] = l.QuantityPerUnit
		positions[i] = i
	}

	query := `
		WITH borradas AS (
			DELETE FROM bom_lines WHERE product_id = $1
		)
		INSERT INTO bom_lines (product_id, material_id, quantity_per_unit, position)
		SELECT $1, t.material_id, t.quantity_per_unit, t.position
		FROM unnest($2::uuid[], $3::numeric[], $4::int[]) AS t(material_id, quantity_per_unit, position)`

	_, err := r.db.Exec(context.Background(), query, productID, materials, quantities, positions)
	if err != nil {
		return fmt.Errorf("reemplazar BOM: %w", err)
	}
	return nil
}
