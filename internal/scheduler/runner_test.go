package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRunnerBookkeeping(t *testing.T) {
	r := NewRunner(0, zerolog.Nop())
	clock := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time { return clock })

	var calls int
	r.Register(JobCollect, func(ctx context.Context) error {
		calls++
		return nil
	})
	failing := errors.New("boom")
	r.Register(JobSummarize, func(ctx context.Context) error {
		return failing
	})

	if r.JobCount() != 2 {
		t.Errorf("JobCount = %d, want 2", r.JobCount())
	}

	if err := r.Run(context.Background(), JobCollect); err != nil {
		t.Fatalf("Run(collect): %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if got := r.LastRunTimes()["collect"]; !got.Equal(clock) {
		t.Errorf("last run = %v, want %v", got, clock)
	}
	if got := r.LastSuccessTimes()["collect"]; !got.Equal(clock) {
		t.Errorf("last success = %v, want %v", got, clock)
	}

	clock = clock.Add(time.Minute)
	if err := r.Run(context.Background(), JobSummarize); !errors.Is(err, failing) {
		t.Fatalf("Run(summarize) = %v, want boom", err)
	}
	if got := r.LastRunTimes()["summarize"]; !got.Equal(clock) {
		t.Errorf("failed job last run = %v, want %v", got, clock)
	}
	if _, ok := r.LastSuccessTimes()["summarize"]; ok {
		t.Error("failed job recorded a success time")
	}
}

func TestRunnerUnknownJob(t *testing.T) {
	r := NewRunner(0, zerolog.Nop())
	if err := r.Run(context.Background(), JobCollect); err == nil {
		t.Error("expected error for unregistered job")
	}
}

func TestRunnerAppliesTimeout(t *testing.T) {
	r := NewRunner(10*time.Millisecond, zerolog.Nop())
	r.Register(JobAggregateHour, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	start := time.Now()
	err := r.Run(context.Background(), JobAggregateHour)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if time.Since(start) > time.Second {
		t.Error("deadline was not enforced")
	}
}
