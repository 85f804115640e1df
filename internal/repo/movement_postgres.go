package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glowcosmetics/storefront/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement.
func (r *PostgresMovementRepository) Log(productID, delta int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO movements (product_id, delta, created_at) VALUES ($1, $2, $3)`,
		productID, delta, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetByProductID returns movements for a product, optionally filtered by
// date range and paginated.
func (r *PostgresMovementRepository) GetByProductID(productID int, mf MovementFilter) ([]models.Movement, int, error) {
	conditions := ""
	args := []any{productID}
	argIdx := 2

	if mf.Since != nil {
		conditions += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, mf.Since.Format(time.RFC3339))
		argIdx++
	}
	if mf.Until != nil {
		conditions += fmt.Sprintf(" AND created_at <= $%d", argIdx)
		args = append(args, mf.Until.Format(time.RFC3339))
		argIdx++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM movements WHERE product_id = $1` + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, product_id, delta, created_at FROM movements WHERE product_id = $1` + conditions + ` ORDER BY id`
	if mf.Limit != nil && *mf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *mf.Limit)
		argIdx++
	}
	if mf.Offset != nil && *mf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *mf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var movements []models.Movement
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		movements = append(movements, m)
	}
	return movements, totalCount, rows.Err()
}
