// Package aggregate computes the time-hierarchical rollups of the lake:
// raw captures merge into hourly files, hourly into daily, daily into
// monthly. One algorithm drives all three levels; only the input layer
// and the bucket timestamp differ.
package aggregate

import (
	"sort"

	"github.com/potalake/potalake/internal/lake"
	"github.com/potalake/potalake/internal/spots"
)

// Row is one rollup line: the metrics and collections accumulated for a
// (mode, band, entity) key within one bucket. Exactly one timestamp
// field is set, matching the rollup level.
//
// The cardinality fields are always derivable from the collections;
// they are persisted so readers can use rows without materializing the
// sets. Collections serialize sorted but readers must treat them as
// unordered sets.
type Row struct {
	Hour  string `json:"hour,omitempty"`
	Date  string `json:"date,omitempty"`
	Month string `json:"month,omitempty"`

	Mode   string `json:"mode"`
	Band   string `json:"band"`
	Entity string `json:"entity"`

	SpotCount        int `json:"spot_count"`
	ActivationCount  int `json:"activation_count"`
	UniqueActivators int `json:"unique_activators"`
	UniqueParks      int `json:"unique_parks"`

	Activators      []string `json:"activators"`
	Parks           []string `json:"parks"`
	Activations     []string `json:"activations"`
	StateActivators []string `json:"state_activators"`
}

// Key identifies one row within a bucket.
type Key struct {
	Mode, Band, Entity string
}

// group holds the running sets behind one row. Cardinalities are
// computed only at emit time, never carried forward from children.
type group struct {
	spotCount       int
	activators      map[string]struct{}
	parks           map[string]struct{}
	activations     map[string]struct{}
	stateActivators map[string]struct{}
}

func newGroup() *group {
	return &group{
		activators:      make(map[string]struct{}),
		parks:           make(map[string]struct{}),
		activations:     make(map[string]struct{}),
		stateActivators: make(map[string]struct{}),
	}
}

// Table accumulates one bucket's rows keyed by (mode, band, entity).
// Spots and child rows can be folded in any order: every input either
// adds to a sum or inserts into a set, so the result is the same for
// any partition of the same inputs.
type Table struct {
	groups map[Key]*group
}

// NewTable returns an empty accumulation table.
func NewTable() *Table {
	return &Table{groups: make(map[Key]*group)}
}

func (t *Table) group(k Key) *group {
	g, ok := t.groups[k]
	if !ok {
		g = newGroup()
		t.groups[k] = g
	}
	return g
}

// Len reports the number of distinct keys accumulated so far.
func (t *Table) Len() int { return len(t.groups) }

// AddSpot folds one normalized spot into the table. Callers are
// responsible for deduplicating spots by id first.
func (t *Table) AddSpot(s spots.NormalizedSpot) {
	g := t.group(Key{Mode: s.Mode, Band: s.Band, Entity: s.Entity})
	g.spotCount++
	g.activators[s.Activator] = struct{}{}
	g.parks[s.Reference] = struct{}{}
	g.activations[s.Activator+"|"+s.Reference] = struct{}{}
	if s.State != nil && *s.State != "" {
		g.stateActivators[*s.State+"|"+s.Activator] = struct{}{}
	}
}

// MergeRow folds one child rollup row into the table: the spot count
// adds, the collections union. The child's cardinality fields are
// ignored; summing them would double-count members shared between
// children.
func (t *Table) MergeRow(r Row) {
	g := t.group(Key{Mode: r.Mode, Band: r.Band, Entity: r.Entity})
	g.spotCount += r.SpotCount
	for _, v := range r.Activators {
		g.activators[v] = struct{}{}
	}
	for _, v := range r.Parks {
		g.parks[v] = struct{}{}
	}
	for _, v := range r.Activations {
		g.activations[v] = struct{}{}
	}
	for _, v := range r.StateActivators {
		g.stateActivators[v] = struct{}{}
	}
}

// Rows emits one row per key with cardinalities recomputed from the
// merged sets and timestamp set for the given level. Rows sort by
// (mode, band, entity) and collections sort lexicographically, so the
// same inputs always serialize to the same bytes.
func (t *Table) Rows(level lake.Level, timestamp string) []Row {
	keys := make([]Key, 0, len(t.groups))
	for k := range t.groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Mode != b.Mode {
			return a.Mode < b.Mode
		}
		if a.Band != b.Band {
			return a.Band < b.Band
		}
		return a.Entity < b.Entity
	})

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		g := t.groups[k]
		r := Row{
			Mode:   k.Mode,
			Band:   k.Band,
			Entity: k.Entity,

			SpotCount:        g.spotCount,
			ActivationCount:  len(g.activations),
			UniqueActivators: len(g.activators),
			UniqueParks:      len(g.parks),

			Activators:      sortedSet(g.activators),
			Parks:           sortedSet(g.parks),
			Activations:     sortedSet(g.activations),
			StateActivators: sortedSet(g.stateActivators),
		}
		switch level {
		case lake.Daily:
			r.Date = timestamp
		case lake.Monthly:
			r.Month = timestamp
		default:
			r.Hour = timestamp
		}
		rows = append(rows, r)
	}
	return rows
}

// Totals reports bucket-wide totals: spot counts summed across keys,
// everything else the cardinality of the union of the per-key sets. An
// activator spotted at the same park on two bands appears in two rows
// but counts once here.
type Totals struct {
	Spots       int
	Activations int
	Activators  int
	Parks       int
}

// Totals computes the bucket-wide totals over all accumulated keys.
func (t *Table) Totals() Totals {
	activators := make(map[string]struct{})
	parks := make(map[string]struct{})
	activations := make(map[string]struct{})

	tot := Totals{}
	for _, g := range t.groups {
		tot.Spots += g.spotCount
		for v := range g.activators {
			activators[v] = struct{}{}
		}
		for v := range g.parks {
			parks[v] = struct{}{}
		}
		for v := range g.activations {
			activations[v] = struct{}{}
		}
	}
	tot.Activators = len(activators)
	tot.Parks = len(parks)
	tot.Activations = len(activations)
	return tot
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
