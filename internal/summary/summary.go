// Package summary precomputes the JSON documents the public site reads:
// windowed stats, all-time totals, activity-by-hour and -weekday, trend
// series, and entity leaderboards. Every document derives from published
// rollups via the manifest; the builder never touches raw captures.
package summary

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/aggregate"
	"github.com/potalake/potalake/internal/fault"
	"github.com/potalake/potalake/internal/lake"
	"github.com/potalake/potalake/internal/manifest"
	"github.com/potalake/potalake/internal/metrics"
	"github.com/potalake/potalake/internal/objstore"
)

// DefaultReadConcurrency bounds parallel rollup fetches per run.
const DefaultReadConcurrency = 16

// Options configures a Builder.
type Options struct {
	Store           objstore.Store
	ReadConcurrency int
}

// Builder computes and publishes all summary documents in one run.
type Builder struct {
	store           objstore.Store
	log             zerolog.Logger
	now             func() time.Time
	readConcurrency int
}

// New creates a summary builder over the lake's store.
func New(opts Options, log zerolog.Logger) *Builder {
	b := &Builder{
		store:           opts.Store,
		log:             log.With().Str("component", "summary").Logger(),
		now:             time.Now,
		readConcurrency: opts.ReadConcurrency,
	}
	if b.readConcurrency <= 0 {
		b.readConcurrency = DefaultReadConcurrency
	}
	return b
}

// SetClock overrides the window reference time. Tests only.
func (b *Builder) SetClock(now func() time.Time) { b.now = now }

// Result reports what one summary run produced.
type Result struct {
	Documents    int
	FilesRead    int
	FilesSkipped int
}

// pick is one manifest entry selected for a window, tagged with its
// level so multi-level windows can recover each entry's bucket value.
type pick struct {
	level lake.Level
	entry manifest.Entry
}

// Run reads the manifest, selects the cheapest rollup layer per window,
// fetches the selected rollups once, and writes all summary documents.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	started := time.Now()

	m, err := manifest.Load(ctx, b.store)
	if err != nil {
		return nil, fault.New(fault.ReadError, "load manifest", err)
	}

	now := b.now().UTC()
	updatedAt := lake.FormatTime(now)

	hourly24 := pickSince(lake.Hourly, m.List(lake.Hourly), lake.HourTimestamp(now.Add(-24*time.Hour)))
	daily7 := pickSince(lake.Daily, m.List(lake.Daily), lake.DayTimestamp(now.AddDate(0, 0, -7)))
	daily30 := pickSince(lake.Daily, m.List(lake.Daily), lake.DayTimestamp(now.AddDate(0, 0, -30)))
	allTime := pickAllTime(m)

	trendDaily := pickSince(lake.Daily, m.List(lake.Daily), lake.DayTimestamp(now.AddDate(0, 0, -14)))
	weekly := pickSince(lake.Daily, m.List(lake.Daily), lake.DayTimestamp(weekStart(now).AddDate(0, 0, -7*13)))
	trendMonthly := pickSince(lake.Monthly, m.List(lake.Monthly), lake.MonthTimestamp(time.Date(now.Year(), now.Month()-11, 1, 0, 0, 0, 0, time.UTC)))

	cache, skipped := b.fetchRows(ctx, pathSet(hourly24, daily7, daily30, allTime, trendDaily, weekly, trendMonthly))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := []struct {
		key string
		doc any
	}{
		{"stats_24h.json", buildStats("24h", updatedAt, hourly24, cache)},
		{"stats_7d.json", buildStats("7d", updatedAt, daily7, cache)},
		{"stats_30d.json", buildStats("30d", updatedAt, daily30, cache)},
		{"all_time.json", buildAllTime(updatedAt, allTime, cache)},
		{"time_of_day.json", buildTimeOfDay(updatedAt, m.List(lake.Hourly))},
		{"day_of_week.json", buildDayOfWeek(updatedAt, m.List(lake.Daily))},
		{"trends.json", buildTrends(updatedAt, trendDaily, weekly, trendMonthly, cache)},
		{"top_entities.json", buildTopEntities(updatedAt, trendDaily, cache)},
	}

	for _, d := range docs {
		body, err := json.Marshal(d.doc)
		if err != nil {
			return nil, fault.New(fault.StorageError, "encode "+d.key, err)
		}
		key := lake.SummaryPrefix + d.key
		if err := b.store.Put(ctx, key, body, objstore.PutOptions{
			ContentType:  lake.ContentTypeJSON,
			CacheControl: lake.CacheSummary,
		}); err != nil {
			return nil, fault.New(fault.StorageError, "put "+key, err)
		}
		metrics.SummaryWritesTotal.Inc()
	}

	res := &Result{Documents: len(docs), FilesRead: len(cache), FilesSkipped: skipped}
	b.log.Info().
		Int("documents", res.Documents).
		Int("files_read", res.FilesRead).
		Int("files_skipped", res.FilesSkipped).
		Dur("elapsed_ms", time.Since(started)).
		Msg("summaries published")
	return res, nil
}

// pickSince selects entries whose bucket value is >= cutoff. Bucket
// values are fixed-width ISO strings within a level, so string order is
// chronological order.
func pickSince(level lake.Level, entries []manifest.Entry, cutoff string) []pick {
	var out []pick
	for _, e := range entries {
		if e.TimeValue(level) >= cutoff {
			out = append(out, pick{level: level, entry: e})
		}
	}
	return out
}

// pickAllTime layers the three levels: every month, plus days in months
// no monthly rollup covers, plus hours in days neither covers. The
// current partial day and month are picked up this way.
func pickAllTime(m *manifest.Manifest) []pick {
	var out []pick

	months := make(map[string]struct{})
	for _, e := range m.List(lake.Monthly) {
		months[e.Month] = struct{}{}
		out = append(out, pick{level: lake.Monthly, entry: e})
	}

	days := make(map[string]struct{})
	for _, e := range m.List(lake.Daily) {
		if _, ok := months[monthOf(e.Day)]; ok {
			continue
		}
		days[e.Day] = struct{}{}
		out = append(out, pick{level: lake.Daily, entry: e})
	}

	for _, e := range m.List(lake.Hourly) {
		day := dayOf(e.Hour)
		if _, ok := months[monthOf(day)]; ok {
			continue
		}
		if _, ok := days[day]; ok {
			continue
		}
		out = append(out, pick{level: lake.Hourly, entry: e})
	}
	return out
}

func monthOf(s string) string {
	if len(s) < 7 {
		return s
	}
	return s[:7]
}

func dayOf(s string) string {
	if len(s) < 10 {
		return s
	}
	return s[:10]
}

// weekStart returns the UTC Sunday beginning the week containing t.
func weekStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day()-int(u.Weekday()), 0, 0, 0, 0, time.UTC)
}

// pathSet collects the distinct rollup paths across all selections, so
// a file shared by several windows is fetched once.
func pathSet(selections ...[]pick) []string {
	set := make(map[string]struct{})
	for _, sel := range selections {
		for _, p := range sel {
			if p.entry.Path != "" {
				set[p.entry.Path] = struct{}{}
			}
		}
	}
	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// fetchRows reads and parses the given rollups with bounded
// concurrency. Unreadable files are skipped with a warning and absent
// from the cache; malformed lines are skipped per line.
func (b *Builder) fetchRows(ctx context.Context, paths []string) (map[string][]aggregate.Row, int) {
	cache := make(map[string][]aggregate.Row, len(paths))
	skipped := 0

	var mu sync.Mutex
	sem := make(chan struct{}, b.readConcurrency)
	var wg sync.WaitGroup

	for _, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			obj, err := b.store.Get(ctx, path)
			if err != nil || obj == nil {
				b.log.Warn().Err(err).Str("key", path).Msg("rollup read failed, excluded from summaries")
				mu.Lock()
				skipped++
				mu.Unlock()
				return
			}

			rows := make([]aggregate.Row, 0, 16)
			for _, line := range lake.SplitLines(obj.Body) {
				var r aggregate.Row
				if err := json.Unmarshal(line, &r); err != nil {
					b.log.Warn().Err(err).Str("key", path).Msg("malformed aggregate line skipped")
					continue
				}
				rows = append(rows, r)
			}
			mu.Lock()
			cache[path] = rows
			mu.Unlock()
		}(path)
	}
	wg.Wait()
	return cache, skipped
}
