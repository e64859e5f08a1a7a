package objstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Mem is an in-memory Store used by tests and local development. It
// mirrors the S3 contract: lexicographic listing, nil on missing get,
// metadata round-trip.
type Mem struct {
	mu      sync.RWMutex
	objects map[string]memObject
	clock   func() time.Time
}

type memObject struct {
	body         []byte
	contentType  string
	cacheControl string
	metadata     map[string]string
	modified     time.Time
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{
		objects: make(map[string]memObject),
		clock:   time.Now,
	}
}

// SetClock overrides the modification-time source, for tests that need
// deterministic LastModified ordering.
func (m *Mem) SetClock(clock func() time.Time) { m.clock = clock }

func (m *Mem) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	infos := make([]ObjectInfo, 0, len(keys))
	for _, k := range keys {
		o := m.objects[k]
		infos = append(infos, ObjectInfo{
			Key:          k,
			Size:         int64(len(o.body)),
			LastModified: o.modified,
		})
	}
	return infos, nil
}

func (m *Mem) Get(ctx context.Context, key string) (*Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.objects[key]
	if !ok {
		return nil, nil
	}
	body := make([]byte, len(o.body))
	copy(body, o.body)

	md := make(map[string]string, len(o.metadata))
	for k, v := range o.metadata {
		md[k] = v
	}
	return &Object{
		Key:          key,
		Body:         body,
		ContentType:  o.contentType,
		CacheControl: o.cacheControl,
		Metadata:     md,
	}, nil
}

func (m *Mem) Put(ctx context.Context, key string, body []byte, opts PutOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(body))
	copy(stored, body)

	md := make(map[string]string, len(opts.Metadata))
	for k, v := range opts.Metadata {
		md[k] = v
	}
	m.objects[key] = memObject{
		body:         stored,
		contentType:  opts.ContentType,
		cacheControl: opts.CacheControl,
		metadata:     md,
		modified:     m.clock(),
	}
	return nil
}

// Len reports the number of stored objects.
func (m *Mem) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// Keys returns all stored keys in lexicographic order.
func (m *Mem) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
