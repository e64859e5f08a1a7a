// Package manifest maintains manifest.json, the single mutable index of
// the lake: the newest rollup object per bucket per level, with
// retention caps. Downstream readers fetch it on a short cache and use
// its paths to discover the immutable rollup files.
package manifest

import (
	"encoding/json"
	"sort"

	"github.com/potalake/potalake/internal/lake"
)

// Retention caps per level: 30 days of hours, 90 days, 24 months.
const (
	DefaultHourlyMax  = 720
	DefaultDailyMax   = 90
	DefaultMonthlyMax = 24
)

// Entry references one published rollup. Exactly one of Hour, Day and
// Month is set, matching the level of the list holding the entry.
type Entry struct {
	Hour  string `json:"hour,omitempty"`
	Day   string `json:"day,omitempty"`
	Month string `json:"month,omitempty"`

	Path             string `json:"path"`
	TotalSpots       int    `json:"total_spots"`
	TotalActivations int    `json:"total_activations"`
}

// NewEntry builds an entry for level with its timestamp field set.
func NewEntry(level lake.Level, timeValue, path string, totalSpots, totalActivations int) Entry {
	e := Entry{Path: path, TotalSpots: totalSpots, TotalActivations: totalActivations}
	switch level {
	case lake.Daily:
		e.Day = timeValue
	case lake.Monthly:
		e.Month = timeValue
	default:
		e.Hour = timeValue
	}
	return e
}

// TimeValue returns the bucket timestamp for the given level.
func (e Entry) TimeValue(level lake.Level) string {
	switch level {
	case lake.Daily:
		return e.Day
	case lake.Monthly:
		return e.Month
	default:
		return e.Hour
	}
}

// Manifest is the full index document. Each list is sorted newest first
// and holds at most one entry per bucket timestamp.
type Manifest struct {
	UpdatedAt string  `json:"updated_at"`
	Hourly    []Entry `json:"hourly"`
	Daily     []Entry `json:"daily"`
	Monthly   []Entry `json:"monthly"`
}

// Empty returns a manifest with non-nil lists, so it marshals with
// explicit empty arrays rather than nulls.
func Empty() *Manifest {
	return &Manifest{Hourly: []Entry{}, Daily: []Entry{}, Monthly: []Entry{}}
}

// List returns the level's entries.
func (m *Manifest) List(level lake.Level) []Entry {
	switch level {
	case lake.Daily:
		return m.Daily
	case lake.Monthly:
		return m.Monthly
	default:
		return m.Hourly
	}
}

func (m *Manifest) setList(level lake.Level, list []Entry) {
	switch level {
	case lake.Daily:
		m.Daily = list
	case lake.Monthly:
		m.Monthly = list
	default:
		m.Hourly = list
	}
}

// Upsert replaces the level's entry for e's bucket timestamp, or inserts
// e if the bucket is new, then re-sorts newest first and truncates to
// maxEntries (non-positive means uncapped).
func (m *Manifest) Upsert(level lake.Level, e Entry, maxEntries int) {
	list := m.List(level)
	tv := e.TimeValue(level)

	replaced := false
	for i := range list {
		if list[i].TimeValue(level) == tv {
			list[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, e)
	}

	// Bucket timestamps within a level share a format, so lexicographic
	// order is chronological order.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TimeValue(level) > list[j].TimeValue(level)
	})
	if maxEntries > 0 && len(list) > maxEntries {
		list = list[:maxEntries]
	}
	m.setList(level, list)
}

// legacy shapes: early manifests named the hourly list "hours" and kept
// the bucket identity in a generic "timestamp" field.
type legacyManifest struct {
	UpdatedAt string        `json:"updated_at"`
	Hours     []legacyEntry `json:"hours"`
	Hourly    []legacyEntry `json:"hourly"`
	Daily     []legacyEntry `json:"daily"`
	Monthly   []legacyEntry `json:"monthly"`
}

type legacyEntry struct {
	Timestamp string `json:"timestamp"`
	Hour      string `json:"hour"`
	Day       string `json:"day"`
	Month     string `json:"month"`

	Path             string `json:"path"`
	TotalSpots       int    `json:"total_spots"`
	TotalActivations int    `json:"total_activations"`
}

// Parse decodes a stored manifest body, coercing legacy fields into the
// current shape. Anything that does not decode as a manifest is treated
// as an empty one; Parse never fails.
func Parse(data []byte) *Manifest {
	var raw legacyManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return Empty()
	}

	m := Empty()
	m.UpdatedAt = raw.UpdatedAt

	hourly := raw.Hourly
	if len(hourly) == 0 {
		hourly = raw.Hours
	}
	m.Hourly = migrateEntries(lake.Hourly, hourly)
	m.Daily = migrateEntries(lake.Daily, raw.Daily)
	m.Monthly = migrateEntries(lake.Monthly, raw.Monthly)
	return m
}

func migrateEntries(level lake.Level, raw []legacyEntry) []Entry {
	out := make([]Entry, 0, len(raw))
	for _, le := range raw {
		tv := le.TimeValue(level)
		if tv == "" && le.Path == "" {
			continue
		}
		out = append(out, NewEntry(level, tv, le.Path, le.TotalSpots, le.TotalActivations))
	}
	return out
}

func (le legacyEntry) TimeValue(level lake.Level) string {
	var tv string
	switch level {
	case lake.Daily:
		tv = le.Day
	case lake.Monthly:
		tv = le.Month
	default:
		tv = le.Hour
	}
	if tv == "" {
		tv = le.Timestamp
	}
	return tv
}
