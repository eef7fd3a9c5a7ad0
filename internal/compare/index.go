package compare

import "math"

// IndexBand is the six-way classification of a cost-of-living index used
// to color map markers.
type IndexBand int

const (
	BandMuchLower IndexBand = iota
	BandLower
	BandSlightlyLower
	BandSlightlyHigher
	BandHigher
	BandMuchHigher
)

// indexBreakpoints are the exclusive upper bounds of every band but the last
var indexBreakpoints = [...]float64{80, 90, 100, 110, 120}

var bandColors = [...]string{
	"#138808", // green
	"#5DC96A", // light green
	"#FFD700", // gold
	"#FFA500", // orange
	"#FF5733", // orange-red
	"#FF0000", // red
}

var bandDescriptions = [...]string{
	"Much lower than average",
	"Lower than average",
	"Slightly lower than average",
	"Slightly higher than average",
	"Higher than average",
	"Much higher than average",
}

// ClassifyIndex returns the first band whose upper bound exceeds index
func ClassifyIndex(index float64) IndexBand {
	for i, bound := range indexBreakpoints {
		if index < bound {
			return IndexBand(i)
		}
	}
	return BandMuchHigher
}

// Color returns the palette token of the band
func (b IndexBand) Color() string {
	return bandColors[b]
}

// Description returns the legend text of the band
func (b IndexBand) Description() string {
	return bandDescriptions[b]
}

// ColorForIndex returns the marker color for a cost-of-living index
func ColorForIndex(index float64) string {
	return ClassifyIndex(index).Color()
}

// LegendEntry describes one band of the map legend. Min is inclusive and
// Max exclusive; open ends are infinite.
type LegendEntry struct {
	Band        IndexBand `json:"band"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	Min         *float64  `json:"min"`
	Max         *float64  `json:"max"`
}

// Legend lists every band from cheapest to most expensive
func Legend() []LegendEntry {
	legend := make([]LegendEntry, len(bandColors))
	lower := math.Inf(-1)
	for i := range legend {
		band := IndexBand(i)
		entry := LegendEntry{
			Band:        band,
			Color:       band.Color(),
			Description: band.Description(),
		}
		if !math.IsInf(lower, -1) {
			lo := lower
			entry.Min = &lo
		}
		if i < len(indexBreakpoints) {
			hi := indexBreakpoints[i]
			entry.Max = &hi
			lower = hi
		}
		legend[i] = entry
	}
	return legend
}
