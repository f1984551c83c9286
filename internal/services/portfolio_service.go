package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sainaa19/StockWise/internal/analytics"
	"github.com/sainaa19/StockWise/internal/models"
	"github.com/sainaa19/StockWise/internal/repository"
	log "github.com/sirupsen/logrus"
)

const (
	// recommendationsLimit bounds the full recommendations view;
	// dashboardRecommendations is the compact summary on the dashboard.
	recommendationsLimit     = 10
	dashboardRecommendations = 3
)

// PortfolioService runs the analytics pipeline over a user's stored raw
// records: fetch, normalize, aggregate, classify.
type PortfolioService struct {
	holdingRepo *repository.HoldingRepository
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(holdingRepo *repository.HoldingRepository) *PortfolioService {
	return &PortfolioService{holdingRepo: holdingRepo}
}

// GetDashboard builds the dashboard view: portfolio totals, per-holding
// derived fields with allocation, and a compact recommendation summary.
func (s *PortfolioService) GetDashboard(ctx context.Context, userID int64) (*models.DashboardResponse, error) {
	defer TrackTime("GetDashboard", time.Now())

	holdings, snapshot, err := s.loadNormalized(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.HoldingView, 0, len(holdings))
	recs := make([]models.Recommendation, 0, len(holdings))
	for _, h := range holdings {
		allocation := snapshot.Allocation(h)
		views = append(views, models.HoldingView{Holding: h, Allocation: allocation})
		recs = append(recs, analytics.Classify(h, allocation))
	}

	return &models.DashboardResponse{
		Snapshot:        snapshot,
		Holdings:        views,
		Recommendations: analytics.RankRecommendations(recs, dashboardRecommendations),
	}, nil
}

// GetRecommendations classifies every holding and returns the ranked view,
// truncated to limit (default and maximum 10).
func (s *PortfolioService) GetRecommendations(ctx context.Context, userID int64, limit int) ([]models.Recommendation, error) {
	defer TrackTime("GetRecommendations", time.Now())

	if limit <= 0 || limit > recommendationsLimit {
		limit = recommendationsLimit
	}

	holdings, snapshot, err := s.loadNormalized(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs := make([]models.Recommendation, 0, len(holdings))
	for _, h := range holdings {
		recs = append(recs, analytics.Classify(h, snapshot.Allocation(h)))
	}
	return analytics.RankRecommendations(recs, limit), nil
}

// ReplaceHoldings swaps the user's stored raw records for a new batch. The
// batch is normalized once up front so degraded records surface as warnings
// at upload time, but the records are stored exactly as submitted.
func (s *PortfolioService) ReplaceHoldings(ctx context.Context, userID int64, records []any) (int, error) {
	defer TrackTime("ReplaceHoldings", time.Now())

	_, warnings := analytics.NormalizeHoldings(records)
	AddWarnings(ctx, warnings)

	count, err := s.holdingRepo.ReplaceAll(ctx, userID, records)
	if err != nil {
		return 0, fmt.Errorf("failed to replace holdings: %w", err)
	}

	log.Infof("stored %d raw holding records for user %d", count, userID)
	return count, nil
}

func (s *PortfolioService) loadNormalized(ctx context.Context, userID int64) ([]models.Holding, models.PortfolioSnapshot, error) {
	raw, err := s.holdingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, models.PortfolioSnapshot{}, fmt.Errorf("failed to load holdings: %w", err)
	}

	records := make([]any, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.Data)
	}

	holdings, warnings := analytics.NormalizeHoldings(records)
	AddWarnings(ctx, warnings)
	return holdings, analytics.AggregatePortfolio(holdings), nil
}
