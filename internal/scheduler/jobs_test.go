package scheduler

import (
	"testing"
	"time"
)

func TestEntryForSpec(t *testing.T) {
	tests := []struct {
		expr string
		want Job
	}{
		{"* * * * *", JobCollect},
		{"*/1 * * * *", JobCollect},
		{"*/15 * * * *", JobSummarize},
		{"*/5 * * * *", JobSummarize},
		{"5 * * * *", JobAggregateHour},
		{"0 * * * *", JobAggregateHour},
		{"15 0 * * *", JobAggregateDay},
		{"30 6 * * *", JobAggregateDay},
		{"30 0 1 * *", JobAggregateMonth},
		{"0 12 15 * *", JobAggregateMonth},
		// Unrecognized shapes default to the hourly entry point.
		{"whenever", JobAggregateHour},
		{"", JobAggregateHour},
		{"1 2 3 4 5 6", JobAggregateHour},
	}
	for _, tt := range tests {
		if got := EntryForSpec(tt.expr); got != tt.want {
			t.Errorf("EntryForSpec(%q) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestJobFromName(t *testing.T) {
	for _, j := range Jobs() {
		got, ok := JobFromName(j.String())
		if !ok || got != j {
			t.Errorf("JobFromName(%q) = %q, %v", j, got, ok)
		}
	}
	if _, ok := JobFromName("no-such-job"); ok {
		t.Error("JobFromName accepted an unknown name")
	}
}

func TestTargetTime(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		now  time.Time
		want time.Time
	}{
		{
			"hour_previous",
			JobAggregateHour,
			time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 8, 5, 0, 0, time.UTC),
		},
		{
			"hour_across_midnight",
			JobAggregateHour,
			time.Date(2024, 3, 15, 0, 5, 0, 0, time.UTC),
			time.Date(2024, 3, 14, 23, 5, 0, 0, time.UTC),
		},
		{
			"day_yesterday",
			JobAggregateDay,
			time.Date(2024, 3, 15, 0, 15, 0, 0, time.UTC),
			time.Date(2024, 3, 14, 0, 15, 0, 0, time.UTC),
		},
		{
			"day_across_month",
			JobAggregateDay,
			time.Date(2024, 3, 1, 0, 15, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 15, 0, 0, time.UTC),
		},
		{
			"month_previous",
			JobAggregateMonth,
			time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			"month_across_year",
			JobAggregateMonth,
			time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC),
			time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			"collect_now",
			JobCollect,
			time.Date(2024, 3, 15, 9, 41, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 9, 41, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetTime(tt.job, tt.now); !got.Equal(tt.want) {
				t.Errorf("TargetTime(%s, %v) = %v, want %v", tt.job, tt.now, got, tt.want)
			}
		})
	}
}
