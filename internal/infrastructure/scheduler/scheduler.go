// Package scheduler runs the periodic due-soon reminder job on a cron
// schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// Scheduler wraps cron-based background jobs.
type Scheduler struct {
	cron   *cron.Cron
	notifs ports.NotificationService
	logger zerolog.Logger
}

func New(notifs ports.NotificationService, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		notifs: notifs,
		logger: logger,
	}
}

// ScheduleDueSoonCheck registers the due-soon job to run every interval.
// A non-positive interval disables the job.
func (s *Scheduler) ScheduleDueSoonCheck(interval time.Duration) error {
	if interval <= 0 {
		s.logger.Info().Msg("due-soon reminder job disabled")
		return nil
	}

	spec := fmt.Sprintf("@every %s", interval)
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifs.CheckUpcomingDue(ctx, time.Now()); err != nil {
			s.logger.Error().Err(err).Msg("due-soon check failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule due-soon check: %w", err)
	}
	s.logger.Info().Dur("interval", interval).Msg("due-soon reminder job scheduled")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
