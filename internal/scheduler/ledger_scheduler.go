package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/smreview/smreview-backend/internal/sync"
	"github.com/smreview/smreview-backend/pkg/logger"
)

// LedgerScheduler runs the nightly ledger maintenance: expired view
// markers are purged and the previous day's sitewide counter is logged.
type LedgerScheduler struct {
	cron    *cron.Cron
	ledger  sync.Ledger
	backend sync.Backend
}

func NewLedgerScheduler(ledger sync.Ledger, backend sync.Backend) *LedgerScheduler {
	return &LedgerScheduler{
		cron:    cron.New(),
		ledger:  ledger,
		backend: backend,
	}
}

func (s *LedgerScheduler) Start() error {
	// Shortly past midnight UTC, after the daily window rolls over
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		purged, err := s.ledger.PurgeExpired(ctx)
		if err != nil {
			logger.Error("Failed to purge expired view markers", err)
			return
		}

		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		count, err := s.backend.FetchDailyViewCount(ctx, yesterday)
		if err != nil {
			logger.Error("Failed to fetch yesterday's view counter", err, map[string]interface{}{
				"date": yesterday,
			})
			return
		}

		logger.Info("Nightly ledger maintenance completed", map[string]interface{}{
			"purged_markers": purged,
			"date":           yesterday,
			"daily_views":    count,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for ledger maintenance", err)
		return err
	}

	s.cron.Start()
	logger.Info("Ledger scheduler started (daily at 00:05 UTC)", nil)

	return nil
}

func (s *LedgerScheduler) Stop() {
	logger.Info("Stopping ledger scheduler...", nil)
	s.cron.Stop()
	logger.Info("Ledger scheduler stopped", nil)
}
