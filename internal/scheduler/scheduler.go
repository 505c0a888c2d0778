package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/HIBA-BEG/Warehouse-Management/internal/config"
	"github.com/HIBA-BEG/Warehouse-Management/internal/service/reporting"
)

// Scheduler runs the periodic statistics snapshot job.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	cfg          config.SnapshotConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SnapshotConfig, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:         c,
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the snapshot job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.takeSnapshot)
	if err != nil {
		s.logger.Error("failed to schedule statistics snapshot", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) takeSnapshot() {
	s.logger.Info("taking statistics snapshot")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshot, err := s.reportingSvc.SnapshotStatistics(ctx)
	if err != nil {
		s.logger.Error("failed to take statistics snapshot", zap.Error(err))
		return
	}

	s.logger.Info("statistics snapshot complete",
		zap.Int("total_products", snapshot.TotalProducts),
		zap.Int("total_stock", snapshot.TotalStock),
		zap.Float64("total_value", snapshot.TotalValue))
}
