// Package geo resolves US states from coordinates or Maidenhead grid
// squares using in-process tables. Boundaries are simplified outlines,
// good to roughly a county: points near a border may resolve to the
// neighbor or to nothing at all. Lookups are deterministic.
package geo

import "strings"

type point struct {
	lat, lon float64
}

type stateShape struct {
	code  string
	rings [][]point

	minLat, maxLat float64
	minLon, maxLon float64
}

func init() {
	for i := range states {
		s := &states[i]
		s.minLat, s.maxLat = 90, -90
		s.minLon, s.maxLon = 180, -180
		for _, ring := range s.rings {
			for _, p := range ring {
				if p.lat < s.minLat {
					s.minLat = p.lat
				}
				if p.lat > s.maxLat {
					s.maxLat = p.lat
				}
				if p.lon < s.minLon {
					s.minLon = p.lon
				}
				if p.lon > s.maxLon {
					s.maxLon = p.lon
				}
			}
		}
	}
}

// Lookup is a stateless resolver over the embedded tables.
type Lookup struct{}

// NewLookup returns a resolver ready for use.
func NewLookup() *Lookup {
	return &Lookup{}
}

// StateForCoords returns the two-letter code of the state containing
// the point, testing shapes in a fixed order so overlapping simplified
// borders resolve the same way every time.
func (*Lookup) StateForCoords(lat, lon float64) (string, bool) {
	for i := range states {
		s := &states[i]
		if lat < s.minLat || lat > s.maxLat || lon < s.minLon || lon > s.maxLon {
			continue
		}
		for _, ring := range s.rings {
			if pointInRing(lat, lon, ring) {
				return s.code, true
			}
		}
	}
	return "", false
}

// StateForGrid resolves a 4-character Maidenhead square. Longer grids
// are truncated to the square; matching is case-insensitive.
func (*Lookup) StateForGrid(grid string) (string, bool) {
	if len(grid) < 4 {
		return "", false
	}
	code, ok := gridStates[strings.ToUpper(grid[:4])]
	return code, ok
}

// pointInRing is the even-odd ray crossing test with lon as x and lat
// as y. Points exactly on an edge may land on either side.
func pointInRing(lat, lon float64, ring []point) bool {
	in := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		vi, vj := ring[i], ring[j]
		if (vi.lat > lat) != (vj.lat > lat) &&
			lon < (vj.lon-vi.lon)*(lat-vi.lat)/(vj.lat-vi.lat)+vi.lon {
			in = !in
		}
		j = i
	}
	return in
}
