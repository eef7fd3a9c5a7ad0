// Package compare turns raw city cost figures into relative, labelled and
// formatted metrics. Every function is pure.
package compare

import (
	"fmt"

	"costmap/server/internal/models"
)

// Trend is the five-way classification of a percentage difference. Labels
// and glyphs are both derived from it so their boundaries cannot drift.
type Trend int

const (
	TrendMuchHigher Trend = iota
	TrendHigher
	TrendSimilar
	TrendLower
	TrendMuchLower
)

// ClassifyDiff buckets a percentage difference. Boundaries are exclusive:
// exactly 20 is Higher, exactly -5 is Lower.
func ClassifyDiff(percentage float64) Trend {
	switch {
	case percentage > 20:
		return TrendMuchHigher
	case percentage > 5:
		return TrendHigher
	case percentage > -5:
		return TrendSimilar
	case percentage > -20:
		return TrendLower
	default:
		return TrendMuchLower
	}
}

// Label returns the human readable name of the trend
func (t Trend) Label() string {
	switch t {
	case TrendMuchHigher:
		return "Much higher"
	case TrendHigher:
		return "Higher"
	case TrendSimilar:
		return "Similar"
	case TrendLower:
		return "Lower"
	default:
		return "Much lower"
	}
}

// Glyph returns the directional indicator of the trend
func (t Trend) Glyph() string {
	switch t {
	case TrendMuchHigher:
		return "📈"
	case TrendHigher:
		return "⬆️"
	case TrendSimilar:
		return "↔️"
	case TrendLower:
		return "⬇️"
	default:
		return "📉"
	}
}

// String implements fmt.Stringer
func (t Trend) String() string {
	return t.Label()
}

// PercentageDiff returns how far value is from baseline, in percent of the
// baseline. baseline must be non-zero.
func PercentageDiff(value, baseline float64) float64 {
	return ((value - baseline) / baseline) * 100
}

// DiffLabel returns the label of the bucket the percentage falls in
func DiffLabel(percentage float64) string {
	return ClassifyDiff(percentage).Label()
}

// DiffGlyph returns the glyph of the bucket the percentage falls in
func DiffGlyph(percentage float64) string {
	return ClassifyDiff(percentage).Glyph()
}

// FormatPercentage renders one decimal with a leading + for positive values
func FormatPercentage(percentage float64) string {
	if percentage == 0 {
		return "0.0%"
	}
	if percentage > 0 {
		return fmt.Sprintf("+%.1f%%", percentage)
	}
	return fmt.Sprintf("%.1f%%", percentage)
}

// CompareItems measures valueA against valueB. With lowerIsBetter a
// negative difference is the better outcome.
func CompareItems(valueA, valueB float64, lowerIsBetter bool) models.ComparisonResult {
	diff := PercentageDiff(valueA, valueB)
	trend := ClassifyDiff(diff)

	isBetter := diff > 0
	if lowerIsBetter {
		isBetter = diff < 0
	}

	return models.ComparisonResult{
		Diff:       diff,
		Percentage: FormatPercentage(diff),
		Label:      trend.Label(),
		Glyph:      trend.Glyph(),
		IsBetter:   isBetter,
	}
}

// CompareCosts is CompareItems for prices, where lower is better
func CompareCosts(valueA, valueB float64) models.ComparisonResult {
	return CompareItems(valueA, valueB, true)
}
