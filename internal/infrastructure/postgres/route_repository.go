package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteRepo)(nil)

// RouteRepo implementación PostgreSQL de la ruta configurada por producto.
type RouteRepo struct {
	db Querier
}

func NewRouteRepository(db Querier) *RouteRepo {
	return &RouteRepo{db: db}
}

func (r *RouteRepo) GetStepsByProduct(productID string) ([]string, error) {
	query := `
		SELECT step
		FROM routing_steps
		WHERE product_id = $1
		ORDER BY position`

	rows, err := r.db.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("leer ruta: %w", err)
	}
	defer rows.Close()

	var steps []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan paso: %w", err)
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

// ReplaceForProduct reemplaza la ruta completa en un solo statement atómico.
func (r *RouteRepo) ReplaceForProduct(productID string, steps []string) error {
	if len(steps) == 0 {
		_, err := r.db.Exec(context.Background(),
			`DELETE FROM routing_steps WHERE product_id = $1`, productID)
		if err != nil {
			return fmt.Errorf("vaciar ruta: %w", err)
		}
		return nil
	}

	positions := make([]int, len(steps))
	for i := range steps {
		positions[i] = i
	}

	query := `
		WITH borradas AS (
			DELETE FROM routing_steps WHERE product_id = $1
		)
		INSERT INTO routing_steps (product_id, step, position)
		SELECT $1, t.step, t.position
		FROM unnest($2::text[], $3::int[]) AS t(step, position)`

	_, err := r.db.Exec(context.Background(), query, productID, steps, positions)
	if err != nil {
		return fmt.Errorf("reemplazar ruta: %w", err)
	}
	return nil
}
