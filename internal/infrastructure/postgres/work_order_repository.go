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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación PostgreSQL de órdenes de trabajo.
type WorkOrderRepo struct {
	db Querier
}

func NewWorkOrderRepository(db Querier) *WorkOrderRepo {
	return &WorkOrderRepo{db: db}
}

const workOrderColumns = `id, order_id, step, work_center_id, position, status, progress,
	estimated_hours, actual_minutes, started_at, completed_at, created_at, updated_at`

func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	var centerID *string
	err := row.Scan(&wo.ID, &wo.OrderID, &wo.Step, &centerID, &wo.Position,
		&wo.Status, &wo.Progress, &wo.EstimatedHours, &wo.ActualMinutes,
		&wo.StartedAt, &wo.CompletedAt, &wo.CreatedAt, &wo.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan orden de trabajo: %w", err)
	}
	if centerID != nil {
		wo.WorkCenterID = *centerID
	}
	return &wo, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *WorkOrderRepo) Create(wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders
			(id, order_id, step, work_center_id, position, status, progress,
			 estimated_hours, actual_minutes, started_at, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(context.Background(), query,
		wo.ID, wo.OrderID, wo.Step, nullable(wo.WorkCenterID), wo.Position,
		wo.Status, wo.Progress, wo.EstimatedHours, wo.ActualMinutes,
		wo.StartedAt, wo.CompletedAt, wo.CreatedAt, wo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar orden de trabajo: %w", err)
	}
	return nil
}

func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	return scanWorkOrder(r.db.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea la fila de la orden de trabajo. Se toma siempre antes
// del lock de la orden padre para evitar deadlocks.
func (r *WorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1 FOR UPDATE`
	return scanWorkOrder(r.db.QueryRow(context.Background(), query, id))
}

func (r *WorkOrderRepo) Update(wo *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET status = $2, progress = $3, actual_minutes = $4,
		    started_at = $5, completed_at = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(context.Background(), query,
		wo.ID, wo.Status, wo.Progress, wo.ActualMinutes,
		wo.StartedAt, wo.CompletedAt, wo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar orden de trabajo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: orden de trabajo %s", domain.ErrNotFound, wo.ID)
	}
	return nil
}

func (r *WorkOrderRepo) ListByOrder(orderID string) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE order_id = $1 ORDER BY position`

	rows, err := r.db.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes de trabajo: %w", err)
	}
	defer rows.Close()

	var workOrders []*entity.WorkOrder
	for rows.Next() {
		var wo entity.WorkOrder
		var centerID *string
		if err := rows.Scan(&wo.ID, &wo.OrderID, &wo.Step, &centerID, &wo.Position,
			&wo.Status, &wo.Progress, &wo.EstimatedHours, &wo.ActualMinutes,
			&wo.StartedAt, &wo.CompletedAt, &wo.CreatedAt, &wo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan orden de trabajo: %w", err)
		}
		if centerID != nil {
			wo.WorkCenterID = *centerID
		}
		workOrders = append(workOrders, &wo)
	}
	return workOrders, rows.Err()
}

// CountIncompleteByOrder cuenta los pasos que aún no están COMPLETED. Cero
// significa que la orden está lista para liquidar.
func (r *WorkOrderRepo) CountIncompleteByOrder(orderID string) (int, error) {
	query := `SELECT COUNT(*) FROM work_orders WHERE order_id = $1 AND status <> $2`

	var count int
	err := r.db.QueryRow(context.Background(), query, orderID, entity.WorkOrderCompleted).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar pasos pendientes: %w", err)
	}
	return count, nil
}
