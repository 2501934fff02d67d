package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/plandesk/plandesk/internal/domain"
)

type expirySweeper interface {
	SweepExpired(ctx context.Context) ([]*domain.Event, error)
	GlobalSummary(ctx context.Context) (domain.StatusSummary, error)
}

// Scheduler drives the expiry sweep on a fixed interval so date-expired
// events are cancelled even when nobody is reading.
type Scheduler struct {
	planner  expirySweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	planner expirySweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		planner:  planner,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.planner.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range cancelled {
		s.logger.Info("event auto-cancelled",
			logger.String("event_id", e.ID),
			logger.String("owner_id", e.OwnerID),
			logger.String("date", e.Date.Format("2006-01-02")),
		)
	}

	if _, err = s.planner.GlobalSummary(ctx); err != nil {
		s.logger.Error("status summary refresh failed",
			logger.String("error", err.Error()),
		)
	}
}
