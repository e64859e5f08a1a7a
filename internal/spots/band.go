package spots

import (
	"math"
	"strings"
)

// bandRange is a closed interval in MHz. Frequencies on either boundary
// belong to the band.
type bandRange struct {
	lo, hi float64
	band   string
}

var bandTable = []bandRange{
	{1.8, 2.0, "160m"},
	{3.5, 4.0, "80m"},
	{5.3, 5.4, "60m"},
	{7.0, 7.3, "40m"},
	{10.1, 10.15, "30m"},
	{14.0, 14.35, "20m"},
	{18.068, 18.168, "17m"},
	{21.0, 21.45, "15m"},
	{24.89, 24.99, "12m"},
	{28.0, 29.7, "10m"},
	{50.0, 54.0, "6m"},
	{144.0, 148.0, "2m"},
	{420.0, 450.0, "70cm"},
}

// BandForFrequency classifies a frequency in kHz into an amateur band
// label, or "other" when it falls outside every range (including zero,
// negative, and NaN inputs).
func BandForFrequency(khz float64) string {
	if math.IsNaN(khz) || khz <= 0 {
		return "other"
	}
	mhz := khz / 1000
	for _, r := range bandTable {
		if mhz >= r.lo && mhz <= r.hi {
			return r.band
		}
	}
	return "other"
}

// Mode categories used by the activity summaries.
const (
	CategoryCW      = "cw"
	CategorySSB     = "ssb"
	CategoryDigital = "digital"
	CategoryOther   = "other"
)

var modeCategories = map[string]string{
	"CW":      CategoryCW,
	"SSB":     CategorySSB,
	"AM":      CategorySSB,
	"FM":      CategorySSB,
	"LSB":     CategorySSB,
	"USB":     CategorySSB,
	"FT8":     CategoryDigital,
	"FT4":     CategoryDigital,
	"RTTY":    CategoryDigital,
	"PSK31":   CategoryDigital,
	"PSK":     CategoryDigital,
	"JS8":     CategoryDigital,
	"MFSK":    CategoryDigital,
	"OLIVIA":  CategoryDigital,
	"SSTV":    CategoryDigital,
	"DIGITAL": CategoryDigital,
}

// ModeCategory maps an operating mode to one of the four summary
// categories. Matching is case-insensitive; unknown modes are "other".
func ModeCategory(mode string) string {
	if cat, ok := modeCategories[strings.ToUpper(mode)]; ok {
		return cat
	}
	return CategoryOther
}
