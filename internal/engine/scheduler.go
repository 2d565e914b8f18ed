package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/o6elisk/amber-scan-simple/internal/metrics"
)

// Scheduler triggers evaluation cycles on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler that runs the engine's cycle
// every cycleInterval.
func NewScheduler(
	eng *Engine,
	cycleInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+cycleInterval.String(),
		s.runCycle,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled cycles.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.publishNextCycle()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runCycle() {
	ctx := context.Background()
	s.log.Info("scheduled evaluation cycle starting")
	if err := s.engine.RunCycle(ctx); err != nil {
		s.log.Error("scheduled evaluation cycle failed", "error", err)
	}
	s.publishNextCycle()
}

func (s *Scheduler) publishNextCycle() {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return
	}
	metrics.SchedulerNextCycleTimestamp.Set(float64(entries[0].Next.Unix()))
}
