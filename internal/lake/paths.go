// Package lake defines the object layout of the data lake: key formats
// for every tier, bucket timestamp formats, content hashing for
// content-addressed keys, and the NDJSON codec shared by writers.
package lake

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the full bucket timestamp format: ISO-8601 UTC with
// milliseconds, matching what JavaScript's toISOString produces and what
// downstream readers parse. All callers format UTC instants only.
const TimeLayout = "2006-01-02T15:04:05.000Z"

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Object keys and prefixes shared across tiers.
const (
	ManifestKey   = "manifest.json"
	SummaryPrefix = "summaries/"
)

// Content types and cache policies. Rollups and raw captures are written
// once under unique keys and served immutable; the manifest and summaries
// are overwritten in place and must stay on short caches or consumers see
// stale data.
const (
	ContentTypeNDJSON = "application/x-ndjson"
	ContentTypeJSON   = "application/json"

	CacheImmutable = "public, max-age=31536000, immutable"
	CacheManifest  = "public, max-age=60"
	CacheSummary   = "public, max-age=300"
)

// FormatTime renders t as a full bucket timestamp (UTC, milliseconds).
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a full bucket timestamp. It accepts timestamps with or
// without fractional seconds.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// HourTimestamp zeroes minutes, seconds and milliseconds and renders the
// full timestamp. This is the hourly bucket identity.
func HourTimestamp(t time.Time) string {
	return FormatTime(t.UTC().Truncate(time.Hour))
}

// DayTimestamp is the daily bucket identity: the first 10 characters of
// the ISO date, YYYY-MM-DD.
func DayTimestamp(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// MonthTimestamp is the monthly bucket identity: YYYY-MM.
func MonthTimestamp(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// TimestampDashed converts a full timestamp into a key-safe form by
// replacing ':' and '.' with '-'.
func TimestampDashed(t time.Time) string {
	r := strings.NewReplacer(":", "-", ".", "-")
	return r.Replace(FormatTime(t))
}

// RawPrefix is the listing prefix for one hour of raw captures.
func RawPrefix(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("raw/%04d/%02d/%02d/%02d/", u.Year(), u.Month(), u.Day(), u.Hour())
}

// RawKey is the object key for a single raw capture taken at capturedAt.
func RawKey(capturedAt time.Time) string {
	return RawPrefix(capturedAt) + "spots-" + TimestampDashed(capturedAt) + ".ndjson"
}

// HourlyPrefix is the listing prefix for all hourly rollups of one day.
func HourlyPrefix(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("hourly/%04d/%02d/%02d/", u.Year(), u.Month(), u.Day())
}

// HourlyBaseKey is the pre-hash key for one hour's rollup. The published
// key carries a content hash inserted by AddHashToFilename.
func HourlyBaseKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("hourly/%04d/%02d/%02d/%02d.ndjson", u.Year(), u.Month(), u.Day(), u.Hour())
}

// HourlyMetaKey is the non-hashed sidecar key for one hour's rollup.
func HourlyMetaKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("hourly/%04d/%02d/%02d/%02d.meta.json", u.Year(), u.Month(), u.Day(), u.Hour())
}

// DailyPrefix is the listing prefix for all daily rollups of one month.
func DailyPrefix(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("daily/%04d/%02d/", u.Year(), u.Month())
}

// DailyBaseKey is the pre-hash key for one day's rollup.
func DailyBaseKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("daily/%04d/%02d/%02d.ndjson", u.Year(), u.Month(), u.Day())
}

// DailyMetaKey is the non-hashed sidecar key for one day's rollup.
func DailyMetaKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("daily/%04d/%02d/%02d.meta.json", u.Year(), u.Month(), u.Day())
}

// MonthlyBaseKey is the pre-hash key for one month's rollup.
func MonthlyBaseKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("monthly/%04d/%02d.ndjson", u.Year(), u.Month())
}

// MonthlyMetaKey is the non-hashed sidecar key for one month's rollup.
func MonthlyMetaKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("monthly/%04d/%02d.meta.json", u.Year(), u.Month())
}

// ShortHash returns the first 8 hex characters of the SHA-256 of body,
// the content-address suffix for published rollups.
func ShortHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])[:8]
}

// AddHashToFilename inserts "-<hash>" before the final '.' of key, or
// appends it when key has no dot.
func AddHashToFilename(key, hash string) string {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return key + "-" + hash
	}
	return key[:i] + "-" + hash + key[i:]
}

// StripHash removes a "-<hash8>" suffix inserted by AddHashToFilename,
// returning the bucket's base key. Keys without a hash come back
// unchanged, so the result identifies the bucket either way.
func StripHash(key string) string {
	dot := strings.LastIndex(key, ".")
	stem, ext := key, ""
	if dot >= 0 {
		stem, ext = key[:dot], key[dot:]
	}
	if len(stem) < 9 || stem[len(stem)-9] != '-' {
		return key
	}
	if !isHex(stem[len(stem)-8:]) {
		return key
	}
	return stem[:len(stem)-9] + ext
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
