package infra

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"flashtrade/internal/service"
	"flashtrade/internal/usecase"
)

// Scheduler runs the settlement sweep that settles pending trades once
// their delay has elapsed, and the periodic quote refresh.
type Scheduler struct {
	cron           *cron.Cron
	tradingService *usecase.TradingService
	market         *service.MarketService
	refreshSpec    string
}

// NewScheduler creates a scheduler. quoteRefreshSeconds controls how often
// the quote table takes a random walk step.
func NewScheduler(tradingService *usecase.TradingService, market *service.MarketService, quoteRefreshSeconds int) *Scheduler {
	if quoteRefreshSeconds <= 0 {
		quoteRefreshSeconds = 30
	}
	return &Scheduler{
		cron:           cron.New(cron.WithSeconds()),
		tradingService: tradingService,
		market:         market,
		refreshSpec:    fmt.Sprintf("*/%d * * * * *", quoteRefreshSeconds),
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start() error {
	// Settlement sweep every second; each submitted trade settles on the
	// first sweep after its delay elapses.
	_, err := s.cron.AddFunc("* * * * * *", func() {
		if n := s.tradingService.SettleDue(context.Background()); n > 0 {
			log.Printf("[CRON] Settlement sweep settled %d trade(s)", n)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add settlement sweep: %w", err)
	}

	_, err = s.cron.AddFunc(s.refreshSpec, func() {
		s.market.RefreshQuotes()
	})
	if err != nil {
		return fmt.Errorf("failed to add quote refresh: %w", err)
	}

	s.cron.Start()
	log.Println("[OK] Scheduler started (settlement sweep: 1s, quote refresh: " + s.refreshSpec + ")")
	return nil
}

// Stop stops the scheduler gracefully
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[OK] Scheduler stopped")
}
