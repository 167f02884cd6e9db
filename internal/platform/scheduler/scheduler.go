// Package scheduler runs the periodic data collection on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// CollectFunc runs one full collection cycle.
type CollectFunc func(ctx context.Context)

// Scheduler manages the recurring collection task.
type Scheduler struct {
	cron    *cron.Cron
	collect CollectFunc
	ctx     context.Context
}

// NewScheduler creates a new Scheduler that invokes collect on each tick.
func NewScheduler(ctx context.Context, collect CollectFunc) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		collect: collect,
		ctx:     ctx,
	}
}

// Register schedules a collection run every intervalHours hours.
func (s *Scheduler) Register(intervalHours int) error {
	if intervalHours <= 0 {
		return fmt.Errorf("collection interval must be positive, got %d", intervalHours)
	}
	spec := fmt.Sprintf("@every %dh", intervalHours)
	if _, err := s.cron.AddFunc(spec, func() {
		slog.Info("scheduled collection starting")
		s.collect(s.ctx)
	}); err != nil {
		return fmt.Errorf("register collection task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}

// RunNow executes a collection immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.collect(s.ctx)
}
