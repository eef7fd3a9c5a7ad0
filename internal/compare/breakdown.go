package compare

import "costmap/server/internal/models"

// Breakdown compares every line item of values against the matching item
// of baselines, grouped by category in display order.
func Breakdown(values, baselines models.CostProfile) []models.CategoryComparison {
	items := values.LineItems()
	bases := baselines.LineItems()

	byCategory := make(map[models.Category][]models.ItemComparison, len(models.Categories))
	for i, item := range items {
		base := bases[i].Value
		byCategory[item.Category] = append(byCategory[item.Category], models.ItemComparison{
			Key:      item.Key,
			Label:    item.Label,
			Value:    item.Value,
			Baseline: base,
			Result:   CompareCosts(item.Value, base),
		})
	}

	breakdown := make([]models.CategoryComparison, 0, len(models.Categories))
	for _, category := range models.Categories {
		breakdown = append(breakdown, models.CategoryComparison{
			Category: category,
			Title:    category.Title(),
			Items:    byCategory[category],
		})
	}
	return breakdown
}

// BreakdownVsAverage compares a city with the national average
func BreakdownVsAverage(city models.CityRecord, average models.CostProfile) []models.CategoryComparison {
	return Breakdown(city.CostProfile, average)
}

// BreakdownBetween measures the destination city against the origin
func BreakdownBetween(from, to models.CityRecord) []models.CategoryComparison {
	return Breakdown(to.CostProfile, from.CostProfile)
}
