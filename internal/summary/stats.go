package summary

import (
	"sort"

	"github.com/potalake/potalake/internal/aggregate"
)

// Stats is the windowed statistics document (stats_24h/7d/30d.json).
type Stats struct {
	Window           string       `json:"window"`
	UpdatedAt        string       `json:"updated_at"`
	TotalSpots       int          `json:"total_spots"`
	TotalActivations int          `json:"total_activations"`
	UniqueActivators int          `json:"unique_activators"`
	UniqueParks      int          `json:"unique_parks"`
	ByMode           []ModeStat   `json:"by_mode"`
	ByBand           []BandStat   `json:"by_band"`
	ByEntity         []EntityStat `json:"by_entity"`
}

type ModeStat struct {
	Mode        string `json:"mode"`
	Spots       int    `json:"spots"`
	Activations int    `json:"activations"`
}

type BandStat struct {
	Band        string `json:"band"`
	Spots       int    `json:"spots"`
	Activations int    `json:"activations"`
}

type EntityStat struct {
	Entity      string `json:"entity"`
	Spots       int    `json:"spots"`
	Activations int    `json:"activations"`
}

// AllTime is the all-time totals document (all_time.json).
type AllTime struct {
	TotalSpots       int    `json:"total_spots"`
	TotalActivations int    `json:"total_activations"`
	UniqueActivators int    `json:"unique_activators"`
	UniqueParks      int    `json:"unique_parks"`
	DataSince        string `json:"data_since"`
	UpdatedAt        string `json:"updated_at"`
}

// maxEntityStats caps the by_entity ranking.
const maxEntityStats = 20

// windowAgg merges rollup rows for one window: spot counts sum, the
// rest are set unions with cardinalities taken at emit time.
type windowAgg struct {
	spots       int
	activators  map[string]struct{}
	parks       map[string]struct{}
	activations map[string]struct{}

	byMode   map[string]*dimStat
	byBand   map[string]*dimStat
	byEntity map[string]*dimStat
}

type dimStat struct {
	spots       int
	activations map[string]struct{}
}

func newWindowAgg() *windowAgg {
	return &windowAgg{
		activators:  make(map[string]struct{}),
		parks:       make(map[string]struct{}),
		activations: make(map[string]struct{}),
		byMode:      make(map[string]*dimStat),
		byBand:      make(map[string]*dimStat),
		byEntity:    make(map[string]*dimStat),
	}
}

func (w *windowAgg) addRow(r aggregate.Row) {
	w.spots += r.SpotCount
	for _, v := range r.Activators {
		w.activators[v] = struct{}{}
	}
	for _, v := range r.Parks {
		w.parks[v] = struct{}{}
	}
	for _, v := range r.Activations {
		w.activations[v] = struct{}{}
	}
	w.addDim(w.byMode, r.Mode, r)
	w.addDim(w.byBand, r.Band, r)
	w.addDim(w.byEntity, r.Entity, r)
}

func (w *windowAgg) addDim(dims map[string]*dimStat, key string, r aggregate.Row) {
	d := dims[key]
	if d == nil {
		d = &dimStat{activations: make(map[string]struct{})}
		dims[key] = d
	}
	d.spots += r.SpotCount
	for _, v := range r.Activations {
		d.activations[v] = struct{}{}
	}
}

type rankedDim struct {
	name        string
	spots       int
	activations int
}

// rankedDims flattens a dimension map sorted by spots descending, names
// ascending on ties.
func rankedDims(dims map[string]*dimStat) []rankedDim {
	out := make([]rankedDim, 0, len(dims))
	for name, d := range dims {
		out = append(out, rankedDim{name: name, spots: d.spots, activations: len(d.activations)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].spots != out[j].spots {
			return out[i].spots > out[j].spots
		}
		return out[i].name < out[j].name
	})
	return out
}

func buildStats(window, updatedAt string, picks []pick, cache map[string][]aggregate.Row) Stats {
	agg := newWindowAgg()
	for _, p := range picks {
		for _, r := range cache[p.entry.Path] {
			agg.addRow(r)
		}
	}

	s := Stats{
		Window:           window,
		UpdatedAt:        updatedAt,
		TotalSpots:       agg.spots,
		TotalActivations: len(agg.activations),
		UniqueActivators: len(agg.activators),
		UniqueParks:      len(agg.parks),
		ByMode:           make([]ModeStat, 0, len(agg.byMode)),
		ByBand:           make([]BandStat, 0, len(agg.byBand)),
		ByEntity:         make([]EntityStat, 0, maxEntityStats),
	}

	for _, d := range rankedDims(agg.byMode) {
		s.ByMode = append(s.ByMode, ModeStat{Mode: d.name, Spots: d.spots, Activations: d.activations})
	}
	for _, d := range rankedDims(agg.byBand) {
		s.ByBand = append(s.ByBand, BandStat{Band: d.name, Spots: d.spots, Activations: d.activations})
	}

	// Entities rank by activations, not raw spot volume.
	entities := rankedDims(agg.byEntity)
	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].activations != entities[j].activations {
			return entities[i].activations > entities[j].activations
		}
		return entities[i].name < entities[j].name
	})
	for _, d := range entities {
		if len(s.ByEntity) == maxEntityStats {
			break
		}
		s.ByEntity = append(s.ByEntity, EntityStat{Entity: d.name, Spots: d.spots, Activations: d.activations})
	}
	return s
}

func buildAllTime(updatedAt string, picks []pick, cache map[string][]aggregate.Row) AllTime {
	agg := newWindowAgg()
	dataSince := ""
	for _, p := range picks {
		rows, ok := cache[p.entry.Path]
		if !ok {
			continue
		}
		// Bucket values are ISO prefixes of each other across levels, so
		// the string minimum is the chronological minimum.
		if tv := p.entry.TimeValue(p.level); dataSince == "" || tv < dataSince {
			dataSince = tv
		}
		for _, r := range rows {
			agg.addRow(r)
		}
	}
	return AllTime{
		TotalSpots:       agg.spots,
		TotalActivations: len(agg.activations),
		UniqueActivators: len(agg.activators),
		UniqueParks:      len(agg.parks),
		DataSince:        dataSince,
		UpdatedAt:        updatedAt,
	}
}
