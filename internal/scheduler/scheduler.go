package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sainaa19/StockWise/internal/services"
	log "github.com/sirupsen/logrus"
)

// refreshTimeout bounds one full refresh pass
const refreshTimeout = 2 * time.Minute

// Scheduler runs the periodic price refresh so dashboards stay current
// without a manual refresh call.
type Scheduler struct {
	cron       *cron.Cron
	pricingSvc *services.PricingService
}

// New creates a Scheduler around the pricing service
func New(pricingSvc *services.PricingService) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		pricingSvc: pricingSvc,
	}
}

// Register adds the price refresh job on the given cron spec
func (s *Scheduler) Register(refreshSpec string) error {
	if _, err := s.cron.AddFunc(refreshSpec, s.refreshPrices); err != nil {
		return fmt.Errorf("register price refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info("scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("scheduler stopped")
}

func (s *Scheduler) refreshPrices() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.pricingSvc.RefreshAllPrices(ctx); err != nil {
		log.Errorf("scheduled price refresh failed: %v", err)
	}
}
