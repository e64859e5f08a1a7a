package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/metrics"
)

// RunFunc executes one job invocation.
type RunFunc func(ctx context.Context) error

// Runner dispatches named jobs, enforces the per-invocation deadline,
// and keeps the bookkeeping the metrics collector scrapes. It is the
// single entry point for both scheduled and one-shot execution.
type Runner struct {
	log     zerolog.Logger
	timeout time.Duration
	now     func() time.Time

	mu          sync.Mutex
	jobs        map[Job]RunFunc
	lastRun     map[Job]time.Time
	lastSuccess map[Job]time.Time
}

// NewRunner creates an empty runner. timeout bounds each invocation;
// zero means no deadline.
func NewRunner(timeout time.Duration, log zerolog.Logger) *Runner {
	return &Runner{
		log:         log.With().Str("component", "scheduler").Logger(),
		timeout:     timeout,
		now:         time.Now,
		jobs:        make(map[Job]RunFunc),
		lastRun:     make(map[Job]time.Time),
		lastSuccess: make(map[Job]time.Time),
	}
}

// SetClock overrides the bookkeeping time source. Tests only.
func (r *Runner) SetClock(now func() time.Time) { r.now = now }

// Register binds a job name to its run function.
func (r *Runner) Register(job Job, fn RunFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job] = fn
}

// Run executes one invocation of job under the configured deadline.
// Failures are logged and counted here so every trigger path reports
// the same way.
func (r *Runner) Run(ctx context.Context, job Job) error {
	r.mu.Lock()
	fn, ok := r.jobs[job]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown job %q", job)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	started := time.Now()
	r.log.Info().Str("job", job.String()).Msg("job started")

	err := fn(ctx)
	elapsed := time.Since(started)
	metrics.JobDuration.WithLabelValues(job.String()).Observe(elapsed.Seconds())

	r.mu.Lock()
	r.lastRun[job] = r.now()
	if err == nil {
		r.lastSuccess[job] = r.now()
	}
	r.mu.Unlock()

	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(job.String(), "error").Inc()
		r.log.Error().Err(err).Str("job", job.String()).Dur("elapsed_ms", elapsed).Msg("job failed")
		return err
	}
	metrics.JobRunsTotal.WithLabelValues(job.String(), "ok").Inc()
	r.log.Info().Str("job", job.String()).Dur("elapsed_ms", elapsed).Msg("job finished")
	return nil
}

// JobCount reports the number of registered jobs.
func (r *Runner) JobCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

// LastRunTimes returns a copy of the most recent run time per job.
func (r *Runner) LastRunTimes() map[string]time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]time.Time, len(r.lastRun))
	for j, t := range r.lastRun {
		out[j.String()] = t
	}
	return out
}

// LastSuccessTimes returns a copy of the most recent success time per job.
func (r *Runner) LastSuccessTimes() map[string]time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]time.Time, len(r.lastSuccess))
	for j, t := range r.lastSuccess {
		out[j.String()] = t
	}
	return out
}

var _ metrics.JobStats = (*Runner)(nil)
