package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrQuoteNotFound = errors.New("quote not found")

// QuoteRepository reads and writes the quote table (symbol -> last price).
// Quotes are seeded externally; this service never fetches live market data.
type QuoteRepository struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

// GetPrice returns the stored price for a symbol
func (r *QuoteRepository) GetPrice(ctx context.Context, symbol string) (float64, error) {
	var price float64
	err := r.pool.QueryRow(ctx, `SELECT price FROM quote WHERE symbol = $1`, symbol).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrQuoteNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	return price, nil
}

// UpsertPrice stores or refreshes the price for a symbol
func (r *QuoteRepository) UpsertPrice(ctx context.Context, symbol string, price float64) error {
	query := `
		INSERT INTO quote (symbol, price, updated)
		VALUES ($1, $2, NOW())
		ON CONFLICT (symbol) DO UPDATE SET price = EXCLUDED.price, updated = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, symbol, price); err != nil {
		return fmt.Errorf("failed to upsert quote for %s: %w", symbol, err)
	}
	return nil
}
