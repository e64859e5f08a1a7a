package lake

import "time"

// Level identifies one rollup tier of the lake. Its string value doubles
// as the manifest list name and the metrics label for that tier.
type Level string

const (
	Hourly  Level = "hourly"
	Daily   Level = "daily"
	Monthly Level = "monthly"
)

func (l Level) String() string { return string(l) }

// Timestamp renders the bucket identity of t at this level: full ISO
// hour, YYYY-MM-DD, or YYYY-MM.
func (l Level) Timestamp(t time.Time) string {
	switch l {
	case Daily:
		return DayTimestamp(t)
	case Monthly:
		return MonthTimestamp(t)
	default:
		return HourTimestamp(t)
	}
}

// BaseKey is the pre-hash rollup key for the bucket containing t.
func (l Level) BaseKey(t time.Time) string {
	switch l {
	case Daily:
		return DailyBaseKey(t)
	case Monthly:
		return MonthlyBaseKey(t)
	default:
		return HourlyBaseKey(t)
	}
}

// MetaKey is the non-hashed sidecar key for the bucket containing t.
func (l Level) MetaKey(t time.Time) string {
	switch l {
	case Daily:
		return DailyMetaKey(t)
	case Monthly:
		return MonthlyMetaKey(t)
	default:
		return HourlyMetaKey(t)
	}
}

// InputPrefix is the listing prefix of the layer this level aggregates,
// scoped to t's bucket: raw captures for the hour, hourly rollups for
// the day, daily rollups for the month.
func (l Level) InputPrefix(t time.Time) string {
	switch l {
	case Daily:
		return HourlyPrefix(t)
	case Monthly:
		return DailyPrefix(t)
	default:
		return RawPrefix(t)
	}
}
