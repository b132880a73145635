// Package scheduler reruns the report pipeline on a schedule while the API
// is serving.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/guttosm/salesreport/internal/logger"
)

// RunFunc executes one report run.
type RunFunc func(ctx context.Context) error

// ReportScheduler triggers RunFunc either on a fixed interval ("30s", "5m")
// or on a cron expression ("0 6 * * *"). Runs never overlap.
type ReportScheduler struct {
	schedule  string
	run       RunFunc
	scheduler *gocron.Scheduler

	mu       sync.Mutex
	runs     int
	lastErr  error
	lastDone time.Time
}

// RunStatus describes the scheduled runs so far.
type RunStatus struct {
	Schedule  string     `json:"schedule"`
	Runs      int        `json:"runs"`
	LastError string     `json:"last_error,omitempty"`
	LastDone  *time.Time `json:"last_done,omitempty"`
}

// NewReportScheduler returns a scheduler for schedule. An empty schedule
// yields a scheduler whose Start is a no-op.
func NewReportScheduler(schedule string, run RunFunc) *ReportScheduler {
	return &ReportScheduler{
		schedule:  schedule,
		run:       run,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start registers the job and runs the scheduler in the background until ctx
// is done. An interval schedule runs once right away; a cron schedule waits
// for its first matching time.
func (s *ReportScheduler) Start(ctx context.Context) error {
	lg := logger.Component("scheduler")
	if s.schedule == "" {
		lg.Info().Msg("report schedule disabled")
		return nil
	}

	s.scheduler.SingletonModeAll()

	job := func() { s.execute(ctx) }
	var err error
	if d, perr := time.ParseDuration(s.schedule); perr == nil {
		if d <= 0 {
			return fmt.Errorf("report schedule %q: interval must be positive", s.schedule)
		}
		_, err = s.scheduler.Every(d).Do(job)
	} else {
		_, err = s.scheduler.Cron(s.schedule).Do(job)
	}
	if err != nil {
		return fmt.Errorf("report schedule %q: %w", s.schedule, err)
	}

	s.scheduler.StartAsync()
	lg.Info().Str("schedule", s.schedule).Msg("report schedule started")

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
		lg.Info().Msg("report schedule stopped")
	}()
	return nil
}

func (s *ReportScheduler) execute(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	err := s.run(ctx)

	s.mu.Lock()
	s.runs++
	s.lastErr = err
	s.lastDone = time.Now()
	s.mu.Unlock()

	if err != nil {
		lg := logger.Component("scheduler")
		lg.Error().Err(err).Msg("scheduled report run failed")
	}
}

// Status reports how many runs finished and how the latest one ended.
func (s *ReportScheduler) Status() RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := RunStatus{Schedule: s.schedule, Runs: s.runs}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	if !s.lastDone.IsZero() {
		done := s.lastDone
		st.LastDone = &done
	}
	return st
}
