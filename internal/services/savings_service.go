package services

import (
	"time"

	"github.com/sainaa19/StockWise/internal/analytics"
	"github.com/sainaa19/StockWise/internal/models"
	log "github.com/sirupsen/logrus"
)

// SavingsService wraps the savings projector with service-level logging.
// The projection itself is pure and does no I/O.
type SavingsService struct{}

// NewSavingsService creates a new SavingsService
func NewSavingsService() *SavingsService {
	return &SavingsService{}
}

// Project computes the savings plan for the request
func (s *SavingsService) Project(req *models.SavingsPlanRequest) (*models.SavingsPlan, error) {
	defer TrackTime("ProjectSavings", time.Now())

	plan, err := analytics.ProjectSavings(req.MonthlyIncome, req.GoalAmount, req.Months, req.AnnualReturnPercent)
	if err != nil {
		return nil, err
	}

	if plan.AlternativePlans != nil {
		log.Debugf("savings plan takes %.1f%% of income, alternatives offered", plan.PercentOfIncome)
	}
	return plan, nil
}
