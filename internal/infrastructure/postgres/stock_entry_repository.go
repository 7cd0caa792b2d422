package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación PostgreSQL del libro de stock. Solo INSERT y
// SELECT: no hay UPDATE ni DELETE sobre stock_entries.
type StockEntryRepo struct {
	db Querier
}

func NewStockEntryRepository(db Querier) *StockEntryRepo {
	return &StockEntryRepo{db: db}
}

const entryColumns = `id, seq, product_id, direction, quantity, change, balance_after,
	source_type, source_id, note, created_by, created_at`

// Create inserta el asiento y recupera el seq asignado por la secuencia de la
// tabla (orden de creación, desempate determinista).
func (r *StockEntryRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries
			(id, product_id, direction, quantity, change, balance_after,
			 source_type, source_id, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq`

	err := r.db.QueryRow(context.Background(), query,
		entry.ID, entry.ProductID, entry.Direction, entry.Quantity, entry.Change,
		entry.BalanceAfter, entry.SourceType, entry.SourceID, entry.Note,
		entry.CreatedBy, entry.CreatedAt).Scan(&entry.Seq)
	if err != nil {
		return fmt.Errorf("insertar asiento de stock: %w", err)
	}
	return nil
}

// GetLatestByProduct devuelve el asiento más reciente del producto (el que
// lleva el saldo vigente en BalanceAfter), o nil si el libro está vacío.
func (r *StockEntryRepo) GetLatestByProduct(productID string) (*entity.StockEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM stock_entries
		WHERE product_id = $1
		ORDER BY seq DESC
		LIMIT 1`

	var e entity.StockEntry
	err := r.db.QueryRow(context.Background(), query, productID).Scan(
		&e.ID, &e.Seq, &e.ProductID, &e.Direction, &e.Quantity, &e.Change,
		&e.BalanceAfter, &e.SourceType, &e.SourceID, &e.Note, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer último asiento: %w", err)
	}
	return &e, nil
}

func (r *StockEntryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM stock_entries
		WHERE product_id = $1
		ORDER BY seq
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar asientos: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.Seq, &e.ProductID, &e.Direction, &e.Quantity,
			&e.Change, &e.BalanceAfter, &e.SourceType, &e.SourceID, &e.Note,
			&e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan asiento: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
