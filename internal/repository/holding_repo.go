package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sainaa19/StockWise/internal/models"
)

// HoldingRepository stores raw holding records per user. Records are kept
// as jsonb documents exactly as uploaded; normalization happens on read so
// the stored shape stays loosely typed.
type HoldingRepository struct {
	pool *pgxpool.Pool
}

// NewHoldingRepository creates a new HoldingRepository
func NewHoldingRepository(pool *pgxpool.Pool) *HoldingRepository {
	return &HoldingRepository{pool: pool}
}

// GetByUserID retrieves all raw holding records for a user, with row IDs
func (r *HoldingRepository) GetByUserID(ctx context.Context, userID int64) ([]models.RawHolding, error) {
	query := `
		SELECT id, user_id, data
		FROM holding
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []models.RawHolding
	for rows.Next() {
		var h models.RawHolding
		var raw []byte
		if err := rows.Scan(&h.ID, &h.UserID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		if err := json.Unmarshal(raw, &h.Data); err != nil {
			return nil, fmt.Errorf("failed to decode holding %d: %w", h.ID, err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// ReplaceAll replaces the user's stored records with a new batch inside one
// transaction. Returns the number of records stored.
func (r *HoldingRepository) ReplaceAll(ctx context.Context, userID int64, records []any) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM holding WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("failed to delete holdings: %w", err)
	}

	query := `
		INSERT INTO holding (user_id, data, created, updated)
		VALUES ($1, $2, NOW(), NOW())
	`
	for i, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return 0, fmt.Errorf("failed to encode record %d: %w", i, err)
		}
		if _, err := tx.Exec(ctx, query, userID, raw); err != nil {
			return 0, fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(records), nil
}

// UpdateData rewrites one stored record, used by the price refresh
func (r *HoldingRepository) UpdateData(ctx context.Context, id int64, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	query := `
		UPDATE holding
		SET data = $2, updated = NOW()
		WHERE id = $1
	`
	if _, err := r.pool.Exec(ctx, query, id, raw); err != nil {
		return fmt.Errorf("failed to update holding %d: %w", id, err)
	}
	return nil
}

// ListUserIDs returns the distinct users that have stored holdings
func (r *HoldingRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT user_id FROM holding ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
