package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/fault"
	"github.com/potalake/potalake/internal/lake"
	"github.com/potalake/potalake/internal/manifest"
	"github.com/potalake/potalake/internal/metrics"
	"github.com/potalake/potalake/internal/objstore"
	"github.com/potalake/potalake/internal/spots"
)

// Options configures an Aggregator. Zero-valued caps and concurrency
// fall back to the defaults.
type Options struct {
	Store           objstore.Store
	Manifest        *manifest.Publisher
	ReadConcurrency int

	// Manifest retention caps per level.
	HourlyMax  int
	DailyMax   int
	MonthlyMax int
}

// Aggregator computes and publishes rollups for all three levels.
type Aggregator struct {
	store    objstore.Store
	manifest *manifest.Publisher
	log      zerolog.Logger
	now      func() time.Time

	readConcurrency int

	hourlyMax  int
	dailyMax   int
	monthlyMax int
}

// New creates an aggregator over the lake's store.
func New(opts Options, log zerolog.Logger) *Aggregator {
	a := &Aggregator{
		store:           opts.Store,
		manifest:        opts.Manifest,
		log:             log.With().Str("component", "aggregate").Logger(),
		now:             time.Now,
		readConcurrency: opts.ReadConcurrency,
		hourlyMax:       opts.HourlyMax,
		dailyMax:        opts.DailyMax,
		monthlyMax:      opts.MonthlyMax,
	}
	if a.readConcurrency <= 0 {
		a.readConcurrency = DefaultReadConcurrency
	}
	if a.hourlyMax <= 0 {
		a.hourlyMax = manifest.DefaultHourlyMax
	}
	if a.dailyMax <= 0 {
		a.dailyMax = manifest.DefaultDailyMax
	}
	if a.monthlyMax <= 0 {
		a.monthlyMax = manifest.DefaultMonthlyMax
	}
	return a
}

// SetClock overrides the generatedAt source. Tests only.
func (a *Aggregator) SetClock(now func() time.Time) { a.now = now }

// Result reports what one aggregation produced.
type Result struct {
	Level     lake.Level
	Timestamp string

	// Key is the published content-addressed rollup key, empty when the
	// bucket had no inputs and only the sidecar was written.
	Key string

	Rows           int
	TotalSpots     int
	FilesProcessed int
	FilesSkipped   int
	MalformedLines int
}

// AggregateHour rolls the hour bucket containing t up from its raw
// captures. Spots are deduplicated by id across captures before
// grouping.
func (a *Aggregator) AggregateHour(ctx context.Context, t time.Time) (*Result, error) {
	return a.run(ctx, lake.Hourly, t.UTC().Truncate(time.Hour))
}

// AggregateDay rolls the day bucket containing t up from its hourly
// rollups.
func (a *Aggregator) AggregateDay(ctx context.Context, t time.Time) (*Result, error) {
	return a.run(ctx, lake.Daily, t.UTC())
}

// AggregateMonth rolls the month bucket containing t up from its daily
// rollups.
func (a *Aggregator) AggregateMonth(ctx context.Context, t time.Time) (*Result, error) {
	return a.run(ctx, lake.Monthly, t.UTC())
}

func (a *Aggregator) run(ctx context.Context, level lake.Level, bucket time.Time) (*Result, error) {
	started := time.Now()
	timestamp := level.Timestamp(bucket)
	log := a.log.With().Str("level", level.String()).Str("bucket", timestamp).Logger()

	prefix := level.InputPrefix(bucket)
	infos, err := a.store.List(ctx, prefix)
	if err != nil {
		return nil, fault.New(fault.ListError, "list "+prefix, err)
	}

	keys := inputKeys(level, infos)
	if len(keys) == 0 {
		return a.publishEmpty(ctx, level, bucket, log)
	}

	bodies, skipped := readAll(ctx, a.store, keys, a.readConcurrency, log)
	if err := ctx.Err(); err != nil {
		// Deadline or cancellation: skipped inputs are not real read
		// failures, so abandon the run instead of publishing a partial
		// bucket. The next schedule retries.
		return nil, err
	}
	if skipped == len(keys) {
		// Nothing was readable. Publishing here would replace the
		// bucket's aggregate with an empty one.
		return nil, fault.Newf(fault.StorageError, "all %d inputs unreadable under %s", len(keys), prefix)
	}
	metrics.InputsReadTotal.WithLabelValues(level.String()).Add(float64(len(keys) - skipped))
	metrics.InputsSkippedTotal.WithLabelValues(level.String()).Add(float64(skipped))

	table := NewTable()
	var malformed int
	if level == lake.Hourly {
		malformed = foldSpots(table, keys, bodies, log)
	} else {
		malformed = foldRows(table, keys, bodies, log)
	}

	res, err := a.publish(ctx, level, bucket, table, len(keys)-skipped)
	if err != nil {
		return nil, err
	}
	res.FilesSkipped = skipped
	res.MalformedLines = malformed

	log.Info().
		Str("key", res.Key).
		Int("rows", res.Rows).
		Int("spots", res.TotalSpots).
		Int("files", res.FilesProcessed).
		Int("skipped", skipped).
		Dur("elapsed_ms", time.Since(started)).
		Msg("rollup published")
	return res, nil
}

// inputKeys selects which listed objects feed the aggregation. The hour
// level consumes every raw capture. Day and month consume one rollup
// per child bucket: content-addressed re-aggregations leave superseded
// objects behind, and each candidate is a complete aggregate of its
// bucket, so the lexicographically greatest key is taken for
// determinism.
func inputKeys(level lake.Level, infos []objstore.ObjectInfo) []string {
	if level == lake.Hourly {
		keys := make([]string, 0, len(infos))
		for _, info := range infos {
			if strings.HasSuffix(info.Key, ".ndjson") {
				keys = append(keys, info.Key)
			}
		}
		return keys
	}

	// List order is lexicographic, so the last candidate seen per child
	// bucket is the greatest.
	best := make(map[string]string)
	for _, info := range infos {
		if !strings.HasSuffix(info.Key, ".ndjson") {
			continue
		}
		best[lake.StripHash(info.Key)] = info.Key
	}

	bases := make([]string, 0, len(best))
	for base := range best {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	keys := make([]string, 0, len(bases))
	for _, base := range bases {
		keys = append(keys, best[base])
	}
	return keys
}

// foldSpots deduplicates spots by id across an hour's captures, then
// groups the survivors. Captures fold in listed (chronological) order,
// so the last capture of a given id wins. Returns the count of skipped
// malformed lines.
func foldSpots(table *Table, keys []string, bodies [][]byte, log zerolog.Logger) int {
	unique := make(map[int64]spots.NormalizedSpot)
	malformed := 0

	for i, body := range bodies {
		if body == nil {
			continue
		}
		for n, line := range lake.SplitLines(body) {
			var s spots.NormalizedSpot
			if err := json.Unmarshal(line, &s); err != nil {
				malformed++
				log.Warn().Err(err).Str("key", keys[i]).Int("line", n+1).Msg("malformed spot line skipped")
				continue
			}
			unique[s.SpotID] = s
		}
	}

	for _, s := range unique {
		table.AddSpot(s)
	}
	return malformed
}

// foldRows merges child rollup rows. Order is irrelevant: the merge is
// commutative and associative.
func foldRows(table *Table, keys []string, bodies [][]byte, log zerolog.Logger) int {
	malformed := 0
	for i, body := range bodies {
		if body == nil {
			continue
		}
		for n, line := range lake.SplitLines(body) {
			var r Row
			if err := json.Unmarshal(line, &r); err != nil {
				malformed++
				log.Warn().Err(err).Str("key", keys[i]).Int("line", n+1).Msg("malformed aggregate line skipped")
				continue
			}
			table.MergeRow(r)
		}
	}
	return malformed
}

// Meta is the non-hashed sidecar describing one published rollup.
type Meta struct {
	Timestamp        string `json:"timestamp"`
	GeneratedAt      string `json:"generatedAt"`
	Path             string `json:"path"`
	TotalSpots       int    `json:"totalSpots"`
	TotalActivations int    `json:"totalActivations"`
	UniqueActivators int    `json:"uniqueActivators"`
	UniqueParks      int    `json:"uniqueParks"`
	Rows             int    `json:"rows"`
	FilesProcessed   int    `json:"filesProcessed"`
}

// publish writes the rollup, its sidecar, and the manifest entry, in
// that order: the manifest must never reference content that does not
// exist yet. A manifest failure is demoted to a warning because the
// rollup already exists and a later run can re-link it.
func (a *Aggregator) publish(ctx context.Context, level lake.Level, bucket time.Time, table *Table, filesProcessed int) (*Result, error) {
	timestamp := level.Timestamp(bucket)
	rows := table.Rows(level, timestamp)
	totals := table.Totals()

	body, err := lake.EncodeLines(rows)
	if err != nil {
		return nil, fmt.Errorf("encode rollup: %w", err)
	}
	key := lake.AddHashToFilename(level.BaseKey(bucket), lake.ShortHash(body))
	generatedAt := lake.FormatTime(a.now())

	if err := a.store.Put(ctx, key, body, objstore.PutOptions{
		ContentType:  lake.ContentTypeNDJSON,
		CacheControl: lake.CacheImmutable,
		Metadata: map[string]string{
			"timestamp":      timestamp,
			"generatedAt":    generatedAt,
			"totalSpots":     strconv.Itoa(totals.Spots),
			"filesProcessed": strconv.Itoa(filesProcessed),
		},
	}); err != nil {
		return nil, fault.New(fault.StorageError, "put "+key, err)
	}
	metrics.RollupRowsTotal.WithLabelValues(level.String()).Add(float64(len(rows)))

	if err := a.putMeta(ctx, level, bucket, Meta{
		Timestamp:        timestamp,
		GeneratedAt:      generatedAt,
		Path:             key,
		TotalSpots:       totals.Spots,
		TotalActivations: totals.Activations,
		UniqueActivators: totals.Activators,
		UniqueParks:      totals.Parks,
		Rows:             len(rows),
		FilesProcessed:   filesProcessed,
	}); err != nil {
		return nil, err
	}

	if err := a.manifest.Update(ctx, level, timestamp, key, totals.Spots, totals.Activations, a.capFor(level)); err != nil {
		metrics.ManifestUpdatesTotal.WithLabelValues(level.String(), "error").Inc()
		a.log.Warn().Err(err).
			Str("level", level.String()).
			Str("key", key).
			Msg("manifest update failed, rollup remains unlinked until the next run")
	} else {
		metrics.ManifestUpdatesTotal.WithLabelValues(level.String(), "ok").Inc()
	}

	return &Result{
		Level:          level,
		Timestamp:      timestamp,
		Key:            key,
		Rows:           len(rows),
		TotalSpots:     totals.Spots,
		FilesProcessed: filesProcessed,
	}, nil
}

// publishEmpty records that the bucket was aggregated and found empty:
// only the sidecar is written, so the manifest never references a
// rollup object that does not exist.
func (a *Aggregator) publishEmpty(ctx context.Context, level lake.Level, bucket time.Time, log zerolog.Logger) (*Result, error) {
	timestamp := level.Timestamp(bucket)
	if err := a.putMeta(ctx, level, bucket, Meta{
		Timestamp:   timestamp,
		GeneratedAt: lake.FormatTime(a.now()),
	}); err != nil {
		return nil, err
	}
	log.Info().Msg("bucket empty, sidecar written")
	return &Result{Level: level, Timestamp: timestamp}, nil
}

func (a *Aggregator) putMeta(ctx context.Context, level lake.Level, bucket time.Time, meta Meta) error {
	body, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode meta: %w", err)
	}
	metaKey := level.MetaKey(bucket)
	if err := a.store.Put(ctx, metaKey, body, objstore.PutOptions{
		ContentType:  lake.ContentTypeJSON,
		CacheControl: lake.CacheImmutable,
	}); err != nil {
		return fault.New(fault.StorageError, "put "+metaKey, err)
	}
	return nil
}

func (a *Aggregator) capFor(level lake.Level) int {
	switch level {
	case lake.Daily:
		return a.dailyMax
	case lake.Monthly:
		return a.monthlyMax
	default:
		return a.hourlyMax
	}
}
