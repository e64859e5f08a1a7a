// Package spots defines the upstream spot record, the normalized spot
// persisted in the raw layer, and the normalizer that maps one to the
// other: frequency→band classification, reference→entity extraction,
// and coordinate/grid→state resolution.
package spots

import (
	"strconv"
	"strings"
	"time"

	"github.com/potalake/potalake/internal/lake"
)

// UpstreamSpot is one element of the upstream API's spot array. Unknown
// or null fields decode to their zero values.
type UpstreamSpot struct {
	SpotID    int64   `json:"spotId"`
	Activator string  `json:"activator"`
	Frequency string  `json:"frequency"` // string-encoded kHz
	Mode      string  `json:"mode"`
	Reference string  `json:"reference"`
	SpotTime  string  `json:"spotTime"`
	Spotter   string  `json:"spotter"`
	Source    string  `json:"source"`
	Name      string  `json:"name"`
	Grid4     string  `json:"grid4"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NormalizedSpot is the canonical record written to the raw layer and
// consumed by hourly aggregation. Never mutated after creation.
type NormalizedSpot struct {
	CapturedAt string  `json:"capturedAt"`
	SpotID     int64   `json:"spotId"`
	Activator  string  `json:"activator"`
	Reference  string  `json:"reference"`
	Frequency  float64 `json:"frequency"` // kHz, 0 when unparseable
	Mode       string  `json:"mode"`
	Band       string  `json:"band"`
	Source     string  `json:"source"`
	Entity     string  `json:"entity"`
	Grid       string  `json:"grid"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Name       string  `json:"name"`
	Spotter    string  `json:"spotter"`
	State      *string `json:"state"` // two-letter US code, null outside the US
}

// StateLookup resolves a US state from coordinates, falling back to a
// 4-character Maidenhead grid. Implemented by geo.Lookup.
type StateLookup interface {
	StateForCoords(lat, lon float64) (string, bool)
	StateForGrid(grid string) (string, bool)
}

// Normalizer turns upstream spot records into normalized spots. It is a
// pure transform; it never fails on individual records.
type Normalizer struct {
	states StateLookup
}

// NewNormalizer creates a normalizer backed by the given state lookup.
func NewNormalizer(states StateLookup) *Normalizer {
	return &Normalizer{states: states}
}

// Normalize converts one upstream record captured at capturedAt.
func (n *Normalizer) Normalize(raw UpstreamSpot, capturedAt time.Time) NormalizedSpot {
	freq := parseFrequency(raw.Frequency)
	grid := normalizeGrid(raw.Grid4)

	return NormalizedSpot{
		CapturedAt: lake.FormatTime(capturedAt),
		SpotID:     raw.SpotID,
		Activator:  raw.Activator,
		Reference:  raw.Reference,
		Frequency:  freq,
		Mode:       strings.ToUpper(raw.Mode),
		Band:       BandForFrequency(freq),
		Source:     raw.Source,
		Entity:     EntityFromReference(raw.Reference),
		Grid:       grid,
		Latitude:   raw.Latitude,
		Longitude:  raw.Longitude,
		Name:       raw.Name,
		Spotter:    raw.Spotter,
		State:      n.resolveState(raw.Latitude, raw.Longitude, grid),
	}
}

// NormalizeAll converts a whole upstream snapshot.
func (n *Normalizer) NormalizeAll(raw []UpstreamSpot, capturedAt time.Time) []NormalizedSpot {
	out := make([]NormalizedSpot, len(raw))
	for i, r := range raw {
		out[i] = n.Normalize(r, capturedAt)
	}
	return out
}

func (n *Normalizer) resolveState(lat, lon float64, grid string) *string {
	if n.states == nil {
		return nil
	}
	// (0,0) is the upstream placeholder for missing coordinates.
	if lat != 0 || lon != 0 {
		if code, ok := n.states.StateForCoords(lat, lon); ok {
			return &code
		}
	}
	if grid != "" {
		if code, ok := n.states.StateForGrid(grid); ok {
			return &code
		}
	}
	return nil
}

// EntityFromReference extracts the country entity: the reference prefix
// before the first '-', or "unknown" when that prefix is empty.
func EntityFromReference(ref string) string {
	entity := ref
	if i := strings.Index(ref, "-"); i >= 0 {
		entity = ref[:i]
	}
	if entity == "" {
		return "unknown"
	}
	return entity
}

func parseFrequency(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func normalizeGrid(g string) string {
	g = strings.ToUpper(strings.TrimSpace(g))
	if len(g) > 4 {
		g = g[:4]
	}
	return g
}
