package summary

import (
	"sort"
	"strings"
	"time"

	"github.com/potalake/potalake/internal/aggregate"
	"github.com/potalake/potalake/internal/lake"
	"github.com/potalake/potalake/internal/manifest"
	"github.com/potalake/potalake/internal/spots"
)

// TimeOfDay is the spots-by-UTC-hour document (time_of_day.json).
type TimeOfDay struct {
	UpdatedAt string      `json:"updated_at"`
	Hours     []HourCount `json:"hours"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Spots int `json:"spots"`
}

// DayOfWeek is the spots-by-weekday document (day_of_week.json).
// Sunday is day 0.
type DayOfWeek struct {
	UpdatedAt string     `json:"updated_at"`
	Days      []DayCount `json:"days"`
}

type DayCount struct {
	Day   int `json:"day"`
	Spots int `json:"spots"`
}

// Trends is the activator trend document (trends.json).
type Trends struct {
	UpdatedAt string     `json:"updated_at"`
	Daily     []TrendRow `json:"daily"`
	Weekly    []TrendRow `json:"weekly"`
	Monthly   []TrendRow `json:"monthly"`
}

// TrendRow counts unique activators in one period, total and per mode
// category. Modes outside every category count in activators only.
type TrendRow struct {
	Period     string `json:"period"`
	Activators int    `json:"activators"`
	CW         int    `json:"cw"`
	SSB        int    `json:"ssb"`
	Digital    int    `json:"digital"`
}

// TopEntities is the leaderboard document (top_entities.json).
type TopEntities struct {
	UpdatedAt string       `json:"updated_at"`
	Parks     []ParkCount  `json:"parks"`
	States    []StateCount `json:"states"`
}

type ParkCount struct {
	Reference  string `json:"reference"`
	Activators int    `json:"activators"`
}

type StateCount struct {
	State      string `json:"state"`
	Activators int    `json:"activators"`
}

// maxTopEntities caps each leaderboard list.
const maxTopEntities = 10

// buildTimeOfDay attributes each hourly rollup's spot total to its UTC
// hour of day. It reads manifest entries only, never rollup bodies.
func buildTimeOfDay(updatedAt string, hourly []manifest.Entry) TimeOfDay {
	counts := make([]int, 24)
	for _, e := range hourly {
		t, err := lake.ParseTime(e.Hour)
		if err != nil {
			continue
		}
		counts[t.UTC().Hour()] += e.TotalSpots
	}

	doc := TimeOfDay{UpdatedAt: updatedAt, Hours: make([]HourCount, 24)}
	for h, n := range counts {
		doc.Hours[h] = HourCount{Hour: h, Spots: n}
	}
	return doc
}

// buildDayOfWeek attributes each daily rollup's spot total to its UTC
// weekday, Sunday first.
func buildDayOfWeek(updatedAt string, daily []manifest.Entry) DayOfWeek {
	counts := make([]int, 7)
	for _, e := range daily {
		t, err := time.Parse(lake.DayLayout, e.Day)
		if err != nil {
			continue
		}
		counts[int(t.Weekday())] += e.TotalSpots
	}

	doc := DayOfWeek{UpdatedAt: updatedAt, Days: make([]DayCount, 7)}
	for d, n := range counts {
		doc.Days[d] = DayCount{Day: d, Spots: n}
	}
	return doc
}

func buildTrends(updatedAt string, daily, weekly, monthly []pick, cache map[string][]aggregate.Row) Trends {
	return Trends{
		UpdatedAt: updatedAt,
		Daily:     trendRows(daily, cache, func(p pick) string { return p.entry.Day }),
		Weekly:    trendRows(weekly, cache, weekPeriod),
		Monthly:   trendRows(monthly, cache, func(p pick) string { return p.entry.Month }),
	}
}

// weekPeriod keys a daily entry by the UTC Sunday of its week.
func weekPeriod(p pick) string {
	t, err := time.Parse(lake.DayLayout, p.entry.Day)
	if err != nil {
		return ""
	}
	return lake.DayTimestamp(weekStart(t))
}

// trendAcc accumulates one period's activator sets.
type trendAcc struct {
	all, cw, ssb, digital map[string]struct{}
}

func newTrendAcc() *trendAcc {
	return &trendAcc{
		all:     make(map[string]struct{}),
		cw:      make(map[string]struct{}),
		ssb:     make(map[string]struct{}),
		digital: make(map[string]struct{}),
	}
}

// trendRows buckets the picked rollups by period and emits one row per
// period that had data, in ascending period order. Several picks can
// share a period (the weekly series folds seven days per row).
func trendRows(picks []pick, cache map[string][]aggregate.Row, periodOf func(pick) string) []TrendRow {
	accs := make(map[string]*trendAcc)
	for _, p := range picks {
		rows := cache[p.entry.Path]
		if len(rows) == 0 {
			continue
		}
		period := periodOf(p)
		if period == "" {
			continue
		}
		acc := accs[period]
		if acc == nil {
			acc = newTrendAcc()
			accs[period] = acc
		}
		for _, r := range rows {
			cat := spots.ModeCategory(r.Mode)
			for _, a := range r.Activators {
				acc.all[a] = struct{}{}
				switch cat {
				case spots.CategoryCW:
					acc.cw[a] = struct{}{}
				case spots.CategorySSB:
					acc.ssb[a] = struct{}{}
				case spots.CategoryDigital:
					acc.digital[a] = struct{}{}
				}
			}
		}
	}

	periods := make([]string, 0, len(accs))
	for p := range accs {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	rows := make([]TrendRow, 0, len(periods))
	for _, p := range periods {
		acc := accs[p]
		rows = append(rows, TrendRow{
			Period:     p,
			Activators: len(acc.all),
			CW:         len(acc.cw),
			SSB:        len(acc.ssb),
			Digital:    len(acc.digital),
		})
	}
	return rows
}

// buildTopEntities ranks parks and states by unique activators over the
// picked window. Parks come from activation pairs, states from
// state-activator pairs; both rank descending with key-ascending ties.
func buildTopEntities(updatedAt string, picks []pick, cache map[string][]aggregate.Row) TopEntities {
	parks := make(map[string]map[string]struct{})
	states := make(map[string]map[string]struct{})

	for _, p := range picks {
		for _, r := range cache[p.entry.Path] {
			for _, pair := range r.Activations {
				call, park, ok := strings.Cut(pair, "|")
				if !ok {
					continue
				}
				addPair(parks, park, call)
			}
			for _, pair := range r.StateActivators {
				state, call, ok := strings.Cut(pair, "|")
				if !ok {
					continue
				}
				addPair(states, state, call)
			}
		}
	}

	doc := TopEntities{
		UpdatedAt: updatedAt,
		Parks:     make([]ParkCount, 0, maxTopEntities),
		States:    make([]StateCount, 0, maxTopEntities),
	}
	for _, k := range topKeys(parks) {
		doc.Parks = append(doc.Parks, ParkCount{Reference: k, Activators: len(parks[k])})
	}
	for _, k := range topKeys(states) {
		doc.States = append(doc.States, StateCount{State: k, Activators: len(states[k])})
	}
	return doc
}

func addPair(sets map[string]map[string]struct{}, key, member string) {
	s := sets[key]
	if s == nil {
		s = make(map[string]struct{})
		sets[key] = s
	}
	s[member] = struct{}{}
}

// topKeys returns up to maxTopEntities keys ordered by set size
// descending, key ascending on ties.
func topKeys(sets map[string]map[string]struct{}) []string {
	keys := make([]string, 0, len(sets))
	for k := range sets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := len(sets[keys[i]]), len(sets[keys[j]])
		if a != b {
			return a > b
		}
		return keys[i] < keys[j]
	})
	if len(keys) > maxTopEntities {
		keys = keys[:maxTopEntities]
	}
	return keys
}
