package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Schedule holds the five cron expressions, all evaluated in UTC. An
// empty expression disables that job's trigger.
type Schedule struct {
	Collect   string
	Hourly    string
	Daily     string
	Monthly   string
	Summarize string
}

func (s Schedule) spec(job Job) string {
	switch job {
	case JobCollect:
		return s.Collect
	case JobAggregateHour:
		return s.Hourly
	case JobAggregateDay:
		return s.Daily
	case JobAggregateMonth:
		return s.Monthly
	case JobSummarize:
		return s.Summarize
	default:
		return ""
	}
}

// Start builds and starts the embedded cron scheduler: one gocron job
// per configured expression, singleton per job so a slow invocation is
// never overlapped by the next tick. Callers must Shutdown the returned
// scheduler on exit.
func Start(runner *Runner, schedule Schedule, log zerolog.Logger) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	for _, job := range Jobs() {
		expr := schedule.spec(job)
		if expr == "" {
			log.Warn().Str("job", job.String()).Msg("no schedule configured, job disabled")
			continue
		}
		_, err := s.NewJob(
			gocron.CronJob(expr, false),
			gocron.NewTask(func() {
				// Run logs and counts failures; a scheduled tick has no
				// caller to return them to.
				_ = runner.Run(context.Background(), job)
			}),
			gocron.WithName(job.String()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			_ = s.Shutdown()
			return nil, fmt.Errorf("schedule %s (%q): %w", job, expr, err)
		}
		log.Info().Str("job", job.String()).Str("cron", expr).Msg("job scheduled")
	}

	s.Start()
	return s, nil
}
