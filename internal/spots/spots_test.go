package spots

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"
)

// ── Band classification ─────────────────────────────────────────────────────

func TestBandForFrequency(t *testing.T) {
	tests := []struct {
		name string
		khz  float64
		want string
	}{
		// Interior point plus both closed boundaries for every range.
		{"160m_mid", 1900, "160m"},
		{"160m_low", 1800, "160m"},
		{"160m_high", 2000, "160m"},
		{"80m_mid", 3750, "80m"},
		{"80m_low", 3500, "80m"},
		{"80m_high", 4000, "80m"},
		{"60m_mid", 5350, "60m"},
		{"60m_low", 5300, "60m"},
		{"60m_high", 5400, "60m"},
		{"40m_mid", 7150, "40m"},
		{"40m_low", 7000, "40m"},
		{"40m_high", 7300, "40m"},
		{"30m_mid", 10125, "30m"},
		{"30m_low", 10100, "30m"},
		{"30m_high", 10150, "30m"},
		{"20m_mid", 14175, "20m"},
		{"20m_low", 14000, "20m"},
		{"20m_high", 14350, "20m"},
		{"17m_mid", 18118, "17m"},
		{"17m_low", 18068, "17m"},
		{"17m_high", 18168, "17m"},
		{"15m_mid", 21225, "15m"},
		{"15m_low", 21000, "15m"},
		{"15m_high", 21450, "15m"},
		{"12m_mid", 24940, "12m"},
		{"12m_low", 24890, "12m"},
		{"12m_high", 24990, "12m"},
		{"10m_mid", 28850, "10m"},
		{"10m_low", 28000, "10m"},
		{"10m_high", 29700, "10m"},
		{"6m_mid", 52000, "6m"},
		{"6m_low", 50000, "6m"},
		{"6m_high", 54000, "6m"},
		{"2m_mid", 146000, "2m"},
		{"2m_low", 144000, "2m"},
		{"2m_high", 148000, "2m"},
		{"70cm_mid", 435000, "70cm"},
		{"70cm_low", 420000, "70cm"},
		{"70cm_high", 450000, "70cm"},

		// Off-band and degenerate inputs.
		{"below_20m", 13999, "other"},
		{"just_above_20m", 14351, "other"},
		{"between_bands", 9000, "other"},
		{"zero", 0, "other"},
		{"negative", -7100, "other"},
		{"nan", math.NaN(), "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandForFrequency(tt.khz); got != tt.want {
				t.Errorf("BandForFrequency(%v) = %q, want %q", tt.khz, got, tt.want)
			}
		})
	}
}

// ── Entity extraction ────────────────────────────────────────────────────────

func TestEntityFromReference(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"K-1234", "K"},
		{"US-PA-1234", "US"},
		{"VE-0123", "VE"},
		{"JA-0014", "JA"},
		{"K", "K"},
		{"", "unknown"},
		{"-1234", "unknown"},
	}
	for _, tt := range tests {
		if got := EntityFromReference(tt.ref); got != tt.want {
			t.Errorf("EntityFromReference(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

// ── Mode categories ──────────────────────────────────────────────────────────

func TestModeCategory(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{"CW", "cw"},
		{"cw", "cw"},
		{"SSB", "ssb"},
		{"usb", "ssb"},
		{"FM", "ssb"},
		{"FT8", "digital"},
		{"ft4", "digital"},
		{"RTTY", "digital"},
		{"Olivia", "digital"},
		{"MOON-BOUNCE", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := ModeCategory(tt.mode); got != tt.want {
			t.Errorf("ModeCategory(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// ── Normalizer ───────────────────────────────────────────────────────────────

type fakeStates struct {
	coords map[[2]float64]string
	grids  map[string]string
}

func (f *fakeStates) StateForCoords(lat, lon float64) (string, bool) {
	code, ok := f.coords[[2]float64{lat, lon}]
	return code, ok
}

func (f *fakeStates) StateForGrid(grid string) (string, bool) {
	code, ok := f.grids[grid]
	return code, ok
}

func TestNormalize(t *testing.T) {
	capturedAt := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	states := &fakeStates{
		coords: map[[2]float64]string{{42, -72}: "MA"},
		grids:  map[string]string{"EM12": "TX"},
	}
	n := NewNormalizer(states)

	raw := UpstreamSpot{
		SpotID:    12345,
		Activator: "W1ABC",
		Frequency: "14285",
		Mode:      "ssb",
		Reference: "US-0001",
		Spotter:   "K2XYZ",
		Source:    "RBN",
		Name:      "Some Park",
		Latitude:  42,
		Longitude: -72,
	}
	got := n.Normalize(raw, capturedAt)

	if got.CapturedAt != "2024-03-15T09:00:00.000Z" {
		t.Errorf("CapturedAt = %q, want %q", got.CapturedAt, "2024-03-15T09:00:00.000Z")
	}
	if got.Frequency != 14285 {
		t.Errorf("Frequency = %v, want 14285", got.Frequency)
	}
	if got.Band != "20m" {
		t.Errorf("Band = %q, want %q", got.Band, "20m")
	}
	if got.Mode != "SSB" {
		t.Errorf("Mode = %q, want %q", got.Mode, "SSB")
	}
	if got.Entity != "US" {
		t.Errorf("Entity = %q, want %q", got.Entity, "US")
	}
	if got.State == nil || *got.State != "MA" {
		t.Errorf("State = %v, want MA", got.State)
	}
}

func TestNormalizeUnparseableFrequency(t *testing.T) {
	n := NewNormalizer(nil)
	tests := []struct {
		name string
		freq string
	}{
		{"empty", ""},
		{"garbage", "QRP!"},
		{"trailing_unit", "14285 kHz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(UpstreamSpot{Frequency: tt.freq}, time.Now())
			if got.Frequency != 0 {
				t.Errorf("Frequency = %v, want 0", got.Frequency)
			}
			if got.Band != "other" {
				t.Errorf("Band = %q, want %q", got.Band, "other")
			}
		})
	}
}

func TestNormalizeStateFallsBackToGrid(t *testing.T) {
	states := &fakeStates{
		coords: map[[2]float64]string{},
		grids:  map[string]string{"EM12": "TX"},
	}
	n := NewNormalizer(states)

	// Coordinates resolve nothing; the grid square should.
	got := n.Normalize(UpstreamSpot{Grid4: "em12", Latitude: 1, Longitude: 1}, time.Now())
	if got.State == nil || *got.State != "TX" {
		t.Errorf("State = %v, want TX", got.State)
	}

	// Neither source resolves: state stays null.
	got = n.Normalize(UpstreamSpot{Grid4: "ZZ99"}, time.Now())
	if got.State != nil {
		t.Errorf("State = %q, want nil", *got.State)
	}
}

func TestNormalizeSkipsNullIslandCoords(t *testing.T) {
	states := &fakeStates{
		coords: map[[2]float64]string{{0, 0}: "XX"},
		grids:  map[string]string{},
	}
	n := NewNormalizer(states)
	got := n.Normalize(UpstreamSpot{}, time.Now())
	if got.State != nil {
		t.Errorf("State = %q, want nil for zero coordinates", *got.State)
	}
}

func TestNormalizedSpotJSON(t *testing.T) {
	capturedAt := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	n := NewNormalizer(nil)
	spot := n.Normalize(UpstreamSpot{
		SpotID:    77,
		Activator: "N0CALL",
		Frequency: "7100",
		Mode:      "CW",
		Reference: "K-1234",
	}, capturedAt)

	body, err := json.Marshal(spot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		`"capturedAt":"2024-03-15T09:00:00.000Z"`,
		`"spotId":77`,
		`"band":"40m"`,
		`"entity":"K"`,
		`"state":null`,
	} {
		if !strings.Contains(string(body), key) {
			t.Errorf("marshalled spot missing %s: %s", key, body)
		}
	}
}

func TestUpstreamSpotTolerantDecoding(t *testing.T) {
	// null fields and unknown keys must not fail the decode.
	payload := `{"spotId":9,"activator":"W1AW","frequency":null,"mode":null,` +
		`"reference":"K-0001","grid4":null,"latitude":null,"longitude":null,` +
		`"count":3,"expire":1200}`
	var raw UpstreamSpot
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw.SpotID != 9 || raw.Frequency != "" || raw.Latitude != 0 {
		t.Errorf("decoded = %+v, want zero values for null fields", raw)
	}
}
