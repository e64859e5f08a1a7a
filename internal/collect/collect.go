// Package collect implements the per-minute capture job: fetch the
// upstream spot snapshot, normalize it, and write one immutable NDJSON
// object into the raw layer.
package collect

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/fault"
	"github.com/potalake/potalake/internal/lake"
	"github.com/potalake/potalake/internal/metrics"
	"github.com/potalake/potalake/internal/objstore"
	"github.com/potalake/potalake/internal/pota"
	"github.com/potalake/potalake/internal/spots"
)

// Result reports what one collection tick produced.
type Result struct {
	Key   string
	Spots int
}

// Collector runs one fetch-normalize-write cycle per invocation.
type Collector struct {
	client *pota.Client
	store  objstore.Store
	norm   *spots.Normalizer
	log    zerolog.Logger
	now    func() time.Time
}

// New creates a collector. The normalizer's state lookup decides how
// much location detail captured spots carry.
func New(client *pota.Client, store objstore.Store, norm *spots.Normalizer, log zerolog.Logger) *Collector {
	return &Collector{
		client: client,
		store:  store,
		norm:   norm,
		log:    log.With().Str("component", "collect").Logger(),
		now:    time.Now,
	}
}

// SetClock overrides the capture timestamp source. Tests only.
func (c *Collector) SetClock(now func() time.Time) { c.now = now }

// Run performs one collection tick. An empty upstream snapshot still
// produces a capture object, so downstream consumers can tell "no
// activity" apart from "no data".
func (c *Collector) Run(ctx context.Context) (*Result, error) {
	capturedAt := c.now().UTC()

	snapshot, err := c.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	metrics.SpotsFetchedTotal.Add(float64(len(snapshot)))

	normalized := c.norm.NormalizeAll(snapshot, capturedAt)
	body, err := lake.EncodeLines(normalized)
	if err != nil {
		return nil, fmt.Errorf("encode capture: %w", err)
	}

	key := lake.RawKey(capturedAt)
	opts := objstore.PutOptions{
		ContentType:  lake.ContentTypeNDJSON,
		CacheControl: lake.CacheImmutable,
		Metadata: map[string]string{
			"spotCount":  strconv.Itoa(len(normalized)),
			"capturedAt": lake.FormatTime(capturedAt),
		},
	}
	if err := c.store.Put(ctx, key, body, opts); err != nil {
		return nil, fault.New(fault.StorageError, "write capture", err)
	}
	metrics.SpotsWrittenTotal.Add(float64(len(normalized)))

	c.log.Info().
		Str("key", key).
		Int("spots", len(normalized)).
		Msg("capture written")

	return &Result{Key: key, Spots: len(normalized)}, nil
}
