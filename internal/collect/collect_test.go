package collect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/fault"
	"github.com/potalake/potalake/internal/lake"
	"github.com/potalake/potalake/internal/objstore"
	"github.com/potalake/potalake/internal/pota"
	"github.com/potalake/potalake/internal/spots"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRunWritesCapture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"spotId":12345,"activator":"W1ABC","frequency":"14285","mode":"SSB","reference":"US-0001","spotter":"K2XYZ"},
			{"spotId":12346,"activator":"VE3DEF","frequency":"7032","mode":"CW","reference":"CA-0042"}
		]`))
	}))
	defer srv.Close()

	store := objstore.NewMem()
	capturedAt := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	c := New(pota.NewClient(srv.URL, time.Second), store, spots.NewNormalizer(nil), zerolog.Nop())
	c.SetClock(fixedClock(capturedAt))

	res, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	wantKey := "raw/2024/03/15/09/spots-2024-03-15T09-00-00-000Z.ndjson"
	if res.Key != wantKey {
		t.Errorf("key = %q, want %q", res.Key, wantKey)
	}
	if res.Spots != 2 {
		t.Errorf("spots = %d, want 2", res.Spots)
	}

	obj, err := store.Get(context.Background(), wantKey)
	if err != nil || obj == nil {
		t.Fatalf("Get(%q) = %v, %v", wantKey, obj, err)
	}
	if obj.ContentType != lake.ContentTypeNDJSON {
		t.Errorf("content type = %q, want %q", obj.ContentType, lake.ContentTypeNDJSON)
	}
	if obj.CacheControl != lake.CacheImmutable {
		t.Errorf("cache control = %q, want %q", obj.CacheControl, lake.CacheImmutable)
	}
	if obj.Metadata["spotCount"] != "2" {
		t.Errorf("spotCount metadata = %q, want 2", obj.Metadata["spotCount"])
	}
	if obj.Metadata["capturedAt"] != "2024-03-15T09:00:00.000Z" {
		t.Errorf("capturedAt metadata = %q", obj.Metadata["capturedAt"])
	}

	lines := lake.SplitLines(obj.Body)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var first spots.NormalizedSpot
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("unmarshal line: %v", err)
	}
	if first.Band != "20m" || first.Entity != "US" || first.CapturedAt != "2024-03-15T09:00:00.000Z" {
		t.Errorf("normalized spot = %+v", first)
	}
}

func TestRunEmptySnapshotStillWrites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := objstore.NewMem()
	c := New(pota.NewClient(srv.URL, time.Second), store, spots.NewNormalizer(nil), zerolog.Nop())
	c.SetClock(fixedClock(time.Date(2024, 3, 15, 9, 1, 0, 0, time.UTC)))

	res, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Spots != 0 {
		t.Errorf("spots = %d, want 0", res.Spots)
	}
	obj, err := store.Get(context.Background(), res.Key)
	if err != nil || obj == nil {
		t.Fatalf("capture object missing: %v, %v", obj, err)
	}
	if len(obj.Body) != 0 {
		t.Errorf("body = %q, want empty", obj.Body)
	}
	if obj.Metadata["spotCount"] != "0" {
		t.Errorf("spotCount metadata = %q, want 0", obj.Metadata["spotCount"])
	}
}

func TestRunFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := objstore.NewMem()
	c := New(pota.NewClient(srv.URL, time.Second), store, spots.NewNormalizer(nil), zerolog.Nop())

	if _, err := c.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	} else if got := fault.KindOf(err); got != fault.FetchError {
		t.Errorf("KindOf = %q, want %q", got, fault.FetchError)
	}
	if store.Len() != 0 {
		t.Errorf("store has %d objects, want 0 after failed fetch", store.Len())
	}
}
