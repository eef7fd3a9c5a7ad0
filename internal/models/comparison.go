package models

// ComparisonResult is the outcome of comparing one value against a baseline
type ComparisonResult struct {
	Diff       float64 `json:"diff"`
	Percentage string  `json:"percentage"`
	Label      string  `json:"label"`
	Glyph      string  `json:"glyph"`
	IsBetter   bool    `json:"is_better"`
}

// ItemComparison pairs a line item of two profiles with their comparison
type ItemComparison struct {
	Key      string           `json:"key"`
	Label    string           `json:"label"`
	Value    float64          `json:"value"`
	Baseline float64          `json:"baseline"`
	Result   ComparisonResult `json:"result"`
}

// CategoryComparison is one table of the breakdown
type CategoryComparison struct {
	Category Category         `json:"category"`
	Title    string           `json:"title"`
	Items    []ItemComparison `json:"items"`
}

// SalaryEquivalence describes what a salary is worth after relocating
type SalaryEquivalence struct {
	FromCity            string  `json:"from_city"`
	ToCity              string  `json:"to_city"`
	Salary              float64 `json:"salary"`
	EquivalentSalary    float64 `json:"equivalent_salary"`
	Diff                float64 `json:"diff"`
	Percentage          string  `json:"percentage"`
	NeedsMore           bool    `json:"needs_more"`
	FormattedSalary     string  `json:"formatted_salary"`
	FormattedEquivalent string  `json:"formatted_equivalent"`
	Summary             string  `json:"summary"`
}

// PowerBand classifies a relative purchasing power figure
type PowerBand string

const (
	PowerMuchStronger PowerBand = "much-stronger"
	PowerStronger     PowerBand = "stronger"
	PowerNearAverage  PowerBand = "near-average"
	PowerAverage      PowerBand = "average"
	PowerWeaker       PowerBand = "weaker"
	PowerMuchWeaker   PowerBand = "much-weaker"
)

// PurchasingPowerReport is the salary calculator view for one city
type PurchasingPowerReport struct {
	CityID        string    `json:"city_id"`
	CityName      string    `json:"city_name"`
	Salary        float64   `json:"salary"`
	RelativePower float64   `json:"relative_power"`
	Band          PowerBand `json:"band"`
	Summary       string    `json:"summary"`
}
