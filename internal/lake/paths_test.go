package lake

import (
	"testing"
	"time"
)

var ts = time.Date(2025, 12, 27, 20, 41, 7, 345_000_000, time.UTC)

func TestBucketTimestamps(t *testing.T) {
	t.Run("hour_zeroes_subunits", func(t *testing.T) {
		got := HourTimestamp(ts)
		want := "2025-12-27T20:00:00.000Z"
		if got != want {
			t.Errorf("HourTimestamp = %q, want %q", got, want)
		}
	})

	t.Run("day", func(t *testing.T) {
		if got := DayTimestamp(ts); got != "2025-12-27" {
			t.Errorf("DayTimestamp = %q, want 2025-12-27", got)
		}
	})

	t.Run("month", func(t *testing.T) {
		if got := MonthTimestamp(ts); got != "2025-12" {
			t.Errorf("MonthTimestamp = %q, want 2025-12", got)
		}
	})

	t.Run("non_utc_input_normalized", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		local := ts.In(loc)
		if got := HourTimestamp(local); got != "2025-12-27T20:00:00.000Z" {
			t.Errorf("HourTimestamp(local) = %q, want 2025-12-27T20:00:00.000Z", got)
		}
	})
}

func TestFormatParseRoundTrip(t *testing.T) {
	s := FormatTime(ts)
	if s != "2025-12-27T20:41:07.345Z" {
		t.Fatalf("FormatTime = %q, want 2025-12-27T20:41:07.345Z", s)
	}
	back, err := ParseTime(s)
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if !back.Equal(ts) {
		t.Errorf("round trip = %v, want %v", back, ts)
	}

	// Readers also encounter timestamps without milliseconds.
	if _, err := ParseTime("2024-01-01T00:00:00Z"); err != nil {
		t.Errorf("ParseTime without millis: %v", err)
	}
}

func TestTimestampDashed(t *testing.T) {
	if got := TimestampDashed(ts); got != "2025-12-27T20-41-07-345Z" {
		t.Errorf("TimestampDashed = %q, want 2025-12-27T20-41-07-345Z", got)
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"raw_prefix", RawPrefix(ts), "raw/2025/12/27/20/"},
		{"raw_key", RawKey(ts), "raw/2025/12/27/20/spots-2025-12-27T20-41-07-345Z.ndjson"},
		{"hourly_prefix", HourlyPrefix(ts), "hourly/2025/12/27/"},
		{"hourly_base", HourlyBaseKey(ts), "hourly/2025/12/27/20.ndjson"},
		{"hourly_meta", HourlyMetaKey(ts), "hourly/2025/12/27/20.meta.json"},
		{"daily_prefix", DailyPrefix(ts), "daily/2025/12/"},
		{"daily_base", DailyBaseKey(ts), "daily/2025/12/27.ndjson"},
		{"daily_meta", DailyMetaKey(ts), "daily/2025/12/27.meta.json"},
		{"monthly_base", MonthlyBaseKey(ts), "monthly/2025/12.ndjson"},
		{"monthly_meta", MonthlyMetaKey(ts), "monthly/2025/12.meta.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestAddHashToFilename(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"with_extension", "hourly/2025/12/27/20.ndjson", "hourly/2025/12/27/20-abc12345.ndjson"},
		{"no_dot_appends", "somefile", "somefile-abc12345"},
		{"meta_double_ext", "daily/2025/12/27.meta.json", "daily/2025/12/27.meta-abc12345.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddHashToFilename(tt.key, "abc12345"); got != tt.want {
				t.Errorf("AddHashToFilename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripHash(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"hashed", "hourly/2025/12/27/20-abc12345.ndjson", "hourly/2025/12/27/20.ndjson"},
		{"unhashed", "hourly/2025/12/27/20.ndjson", "hourly/2025/12/27/20.ndjson"},
		{"no_dot", "somefile-abc12345", "somefile"},
		{"dash_but_not_hex", "daily/2025/12/notahash!.ndjson", "daily/2025/12/notahash!.ndjson"},
		{"short_stem", "a.ndjson", "a.ndjson"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHash(tt.key); got != tt.want {
				t.Errorf("StripHash(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	t.Run("round_trip", func(t *testing.T) {
		base := "daily/2025/12/27.ndjson"
		hashed := AddHashToFilename(base, ShortHash([]byte("body")))
		if got := StripHash(hashed); got != base {
			t.Errorf("StripHash(AddHash) = %q, want %q", got, base)
		}
	})
}

func TestShortHash(t *testing.T) {
	a := ShortHash([]byte("hello"))
	b := ShortHash([]byte("hello"))
	c := ShortHash([]byte("hello "))

	if len(a) != 8 {
		t.Fatalf("hash length = %d, want 8", len(a))
	}
	if a != b {
		t.Errorf("same content hashed differently: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different content produced same hash %q", a)
	}
	for _, ch := range a {
		if !((ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f')) {
			t.Errorf("non-hex character %q in hash %q", ch, a)
		}
	}
}
