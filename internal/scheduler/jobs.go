// Package scheduler names the pipeline's jobs, maps cron expressions to
// them, computes each job's target bucket, and wires the embedded cron
// scheduler around a run registry with per-job bookkeeping.
package scheduler

import (
	"strings"
	"time"
)

// Job identifies one named pipeline job.
type Job string

const (
	JobCollect        Job = "collect"
	JobAggregateHour  Job = "aggregate-hour"
	JobAggregateDay   Job = "aggregate-day"
	JobAggregateMonth Job = "aggregate-month"
	JobSummarize      Job = "summarize"
)

// Jobs lists every job in registration order.
func Jobs() []Job {
	return []Job{JobCollect, JobAggregateHour, JobAggregateDay, JobAggregateMonth, JobSummarize}
}

func (j Job) String() string { return string(j) }

// JobFromName resolves a job by its name.
func JobFromName(name string) (Job, bool) {
	for _, j := range Jobs() {
		if string(j) == name {
			return j, true
		}
	}
	return "", false
}

// EntryForSpec classifies a five-field cron expression by shape:
// every-minute schedules collect, minute-step schedules summarize, a
// fixed minute walks down the fields — hourly, daily, monthly — as they
// pin down. Unrecognized expressions fall back to aggregate-hour.
func EntryForSpec(expr string) Job {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return JobAggregateHour
	}
	minute, hour, dom := fields[0], fields[1], fields[2]
	switch {
	case minute == "*" || minute == "*/1":
		return JobCollect
	case strings.HasPrefix(minute, "*/"):
		return JobSummarize
	case hour == "*":
		return JobAggregateHour
	case dom == "*":
		return JobAggregateDay
	default:
		return JobAggregateMonth
	}
}

// TargetTime computes the bucket a job invocation aggregates: the hour
// job runs shortly after the hour and targets the previous hour, the
// day job targets yesterday, the month job runs on the 1st and targets
// the previous month. Collect and summarize act on the present.
func TargetTime(job Job, now time.Time) time.Time {
	u := now.UTC()
	switch job {
	case JobAggregateHour:
		return u.Add(-time.Hour)
	case JobAggregateDay:
		return u.AddDate(0, 0, -1)
	case JobAggregateMonth:
		return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	default:
		return u
	}
}
