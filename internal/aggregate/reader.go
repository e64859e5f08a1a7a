package aggregate

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/objstore"
)

// DefaultReadConcurrency bounds parallel input fetches per invocation.
const DefaultReadConcurrency = 16

// readAll fetches keys with at most concurrency gets in flight and
// returns the bodies in input order, so callers can fold captures
// deterministically. A failed or vanished object yields a nil body and
// counts as skipped; the batch continues without it.
func readAll(ctx context.Context, store objstore.Store, keys []string, concurrency int, log zerolog.Logger) (bodies [][]byte, skipped int) {
	if concurrency <= 0 {
		concurrency = DefaultReadConcurrency
	}

	bodies = make([][]byte, len(keys))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, key := range keys {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, key string) {
			defer wg.Done()
			defer func() { <-sem }()

			obj, err := store.Get(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("input read failed, skipping")
				return
			}
			if obj == nil {
				log.Warn().Str("key", key).Msg("input vanished between list and get, skipping")
				return
			}
			bodies[i] = obj.Body
		}(i, key)
	}
	wg.Wait()

	for _, b := range bodies {
		if b == nil {
			skipped++
		}
	}
	return bodies, skipped
}
