package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/lake"
	"github.com/potalake/potalake/internal/objstore"
)

// Publisher performs load-modify-store updates on manifest.json. There
// is no compare-and-swap on the store: the scheduler is expected to run
// at most one writer per level, and concurrent writers risk losing each
// other's updates.
type Publisher struct {
	store objstore.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewPublisher creates a publisher over the lake's store.
func NewPublisher(store objstore.Store, log zerolog.Logger) *Publisher {
	return &Publisher{
		store: store,
		log:   log.With().Str("component", "manifest").Logger(),
		now:   time.Now,
	}
}

// SetClock overrides the updated_at source. Tests only.
func (p *Publisher) SetClock(now func() time.Time) { p.now = now }

// Load fetches and migrates the current manifest. A missing object or a
// body that does not decode yields an empty manifest; only a transport
// failure is an error.
func Load(ctx context.Context, store objstore.Store) (*Manifest, error) {
	obj, err := store.Get(ctx, lake.ManifestKey)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", lake.ManifestKey, err)
	}
	if obj == nil {
		return Empty(), nil
	}
	return Parse(obj.Body), nil
}

// Load fetches and migrates the current manifest through the publisher's
// store.
func (p *Publisher) Load(ctx context.Context) (*Manifest, error) {
	return Load(ctx, p.store)
}

// Update replaces-or-inserts the entry for timeValue in the level's
// list, re-sorts it newest first, truncates to maxEntries, and stores
// the updated manifest on a short cache.
func (p *Publisher) Update(ctx context.Context, level lake.Level, timeValue, path string, totalSpots, totalActivations, maxEntries int) error {
	m, err := p.Load(ctx)
	if err != nil {
		return err
	}

	m.Upsert(level, NewEntry(level, timeValue, path, totalSpots, totalActivations), maxEntries)
	m.UpdatedAt = lake.FormatTime(p.now())

	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := p.store.Put(ctx, lake.ManifestKey, body, objstore.PutOptions{
		ContentType:  lake.ContentTypeJSON,
		CacheControl: lake.CacheManifest,
	}); err != nil {
		return fmt.Errorf("put %s: %w", lake.ManifestKey, err)
	}

	p.log.Debug().
		Str("level", level.String()).
		Str("bucket", timeValue).
		Str("path", path).
		Int("entries", len(m.List(level))).
		Msg("manifest updated")
	return nil
}
