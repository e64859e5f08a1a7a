package geo

import "testing"

func TestStateForCoords(t *testing.T) {
	l := NewLookup()
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{"boston", 42.36, -71.06, "MA"},
		{"hartford", 41.76, -72.67, "CT"},
		{"western_mass_border", 42.0, -72.0, "CT"},
		{"southwest_pa", 40.0, -80.0, "PA"},
		{"philadelphia", 39.95, -75.16, "PA"},
		{"richmond", 37.54, -77.44, "VA"},
		{"washington_dc", 38.90, -77.03, "DC"},
		{"atlanta", 33.75, -84.39, "GA"},
		{"miami", 25.76, -80.19, "FL"},
		{"nashville", 36.16, -86.78, "TN"},
		{"chicago", 41.88, -87.63, "IL"},
		{"minneapolis", 44.98, -93.27, "MN"},
		{"dallas", 32.78, -96.80, "TX"},
		{"houston", 29.76, -95.37, "TX"},
		{"denver", 39.74, -104.99, "CO"},
		{"santa_fe", 35.69, -105.94, "NM"},
		{"phoenix", 33.45, -112.07, "AZ"},
		{"las_vegas", 36.17, -115.14, "NV"},
		{"los_angeles", 34.05, -118.24, "CA"},
		{"portland", 45.52, -122.68, "OR"},
		{"seattle", 47.61, -122.33, "WA"},
		{"anchorage", 61.22, -149.90, "AK"},
		{"juneau", 58.30, -134.40, "AK"},
		{"honolulu", 21.31, -157.86, "HI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.StateForCoords(tt.lat, tt.lon)
			if !ok {
				t.Fatalf("StateForCoords(%v, %v) = miss, want %s", tt.lat, tt.lon, tt.want)
			}
			if got != tt.want {
				t.Errorf("StateForCoords(%v, %v) = %s, want %s", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestStateForCoordsMisses(t *testing.T) {
	l := NewLookup()
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"null_island", 0, 0},
		{"atlantic", 30.0, -60.0},
		{"london", 51.51, -0.13},
		{"toronto", 43.65, -79.38},
		{"mexico_city", 19.43, -99.13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := l.StateForCoords(tt.lat, tt.lon); ok {
				t.Errorf("StateForCoords(%v, %v) = %s, want miss", tt.lat, tt.lon, got)
			}
		})
	}
}

func TestStateForCoordsDeterministic(t *testing.T) {
	l := NewLookup()
	// A point near a shared border must resolve identically on every call.
	first, ok := l.StateForCoords(42.0, -72.0)
	if !ok {
		t.Fatal("expected a hit on the MA/CT line")
	}
	for i := 0; i < 100; i++ {
		got, ok := l.StateForCoords(42.0, -72.0)
		if !ok || got != first {
			t.Fatalf("call %d: got %q/%v, want %q", i, got, ok, first)
		}
	}
}

func TestStateForGrid(t *testing.T) {
	l := NewLookup()
	tests := []struct {
		grid   string
		want   string
		wantOK bool
	}{
		{"FN42", "MA", true},
		{"FN31", "CT", true},
		{"EM12", "TX", true},
		{"CN87", "WA", true},
		{"BL11", "HI", true},
		{"BP51", "AK", true},
		{"fn42", "MA", true},   // case-insensitive
		{"FN42ab", "MA", true}, // 6-char locator truncates to the square
		{"ZZ99", "", false},
		{"FN", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := l.StateForGrid(tt.grid)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("StateForGrid(%q) = %q, %v, want %q, %v", tt.grid, got, ok, tt.want, tt.wantOK)
		}
	}
}
