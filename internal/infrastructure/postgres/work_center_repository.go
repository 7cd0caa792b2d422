package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.WorkCenterRepository = (*WorkCenterRepo)(nil)

// WorkCenterRepo implementación PostgreSQL de centros de trabajo.
type WorkCenterRepo struct {
	db Querier
}

func NewWorkCenterRepository(db Querier) *WorkCenterRepo {
	return &WorkCenterRepo{db: db}
}

func (r *WorkCenterRepo) Create(center *entity.WorkCenter) error {
	query := `
		INSERT INTO work_centers (id, name, capacity_per_hour, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(context.Background(), query,
		center.ID, center.Name, center.CapacityPerHour, center.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: centro de trabajo %q ya existe", domain.ErrDuplicate, center.Name)
		}
		return fmt.Errorf("insertar centro de trabajo: %w", err)
	}
	return nil
}

func (r *WorkCenterRepo) List() ([]*entity.WorkCenter, error) {
	query := `SELECT id, name, capacity_per_hour, created_at FROM work_centers ORDER BY name`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar centros de trabajo: %w", err)
	}
	defer rows.Close()

	var centers []*entity.WorkCenter
	for rows.Next() {
		var wc entity.WorkCenter
		if err := rows.Scan(&wc.ID, &wc.Name, &wc.CapacityPerHour, &wc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan centro de trabajo: %w", err)
		}
		centers = append(centers, &wc)
	}
	return centers, rows.Err()
}
