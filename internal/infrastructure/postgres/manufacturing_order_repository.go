package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.ManufacturingOrderRepository = (*ManufacturingOrderRepo)(nil)

// ManufacturingOrderRepo implementación PostgreSQL de órdenes de producción.
// El snapshot de la BOM se persiste como JSONB en la misma fila: vive y
// muere con la orden, nunca se edita.
type ManufacturingOrderRepo struct {
	db Querier
}

func NewManufacturingOrderRepository(db Querier) *ManufacturingOrderRepo {
	return &ManufacturingOrderRepo{db: db}
}

const orderColumns = `id, order_number, name, product_id, quantity, state, deadline,
	bom_snapshot, created_by, completed_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.ManufacturingOrder, error) {
	var o entity.ManufacturingOrder
	var snapshot []byte
	err := row.Scan(&o.ID, &o.OrderNumber, &o.Name, &o.ProductID, &o.Quantity,
		&o.State, &o.Deadline, &snapshot, &o.CreatedBy, &o.CompletedAt,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan orden: %w", err)
	}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &o.BOMSnapshot); err != nil {
			return nil, fmt.Errorf("decodificar snapshot BOM: %w", err)
		}
	}
	return &o, nil
}

func (r *ManufacturingOrderRepo) Create(order *entity.ManufacturingOrder) error {
	snapshot, err := json.Marshal(order.BOMSnapshot)
	if err != nil {
		return fmt.Errorf("codificar snapshot BOM: %w", err)
	}

	query := `
		INSERT INTO manufacturing_orders
			(id, order_number, name, product_id, quantity, state, deadline,
			 bom_snapshot, created_by, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = r.db.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.Name, order.ProductID, order.Quantity,
		order.State, order.Deadline, snapshot, order.CreatedBy, order.CompletedAt,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: orden %s ya existe", domain.ErrDuplicate, order.OrderNumber)
		}
		return fmt.Errorf("insertar orden: %w", err)
	}
	return nil
}

func (r *ManufacturingOrderRepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM manufacturing_orders WHERE id = $1`
	return scanOrder(r.db.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea la fila de la orden. Toda transición de estado y la
// liquidación pasan por este lock: la orden es la unidad de serialización.
func (r *ManufacturingOrderRepo) GetForUpdate(id string) (*entity.ManufacturingOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM manufacturing_orders WHERE id = $1 FOR UPDATE`
	return scanOrder(r.db.QueryRow(context.Background(), query, id))
}

// UpdateStateIf transición condicional: solo escribe si el estado actual está
// en from. Devuelve false sin error cuando otra transacción ganó la carrera.
func (r *ManufacturingOrderRepo) UpdateStateIf(id string, from []string, to string, completedAt *time.Time) (bool, error) {
	query := `
		UPDATE manufacturing_orders
		SET state = $2,
		    completed_at = COALESCE($3, completed_at),
		    updated_at = NOW()
		WHERE id = $1 AND state = ANY($4)`

	tag, err := r.db.Exec(context.Background(), query, id, to, completedAt, from)
	if err != nil {
		return false, fmt.Errorf("actualizar estado de orden: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ManufacturingOrderRepo) List(limit, offset int) ([]*entity.ManufacturingOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM manufacturing_orders
		ORDER BY created_at DESC, order_number DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	defer rows.Close()

	var orders []*entity.ManufacturingOrder
	for rows.Next() {
		var o entity.ManufacturingOrder
		var snapshot []byte
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Name, &o.ProductID, &o.Quantity,
			&o.State, &o.Deadline, &snapshot, &o.CreatedBy, &o.CompletedAt,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		if len(snapshot) > 0 {
			if err := json.Unmarshal(snapshot, &o.BOMSnapshot); err != nil {
				return nil, fmt.Errorf("decodificar snapshot BOM: %w", err)
			}
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}
