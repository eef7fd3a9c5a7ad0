package compare

import (
	"errors"
	"fmt"

	"costmap/server/internal/models"
)

var (
	ErrSameCity      = errors.New("cannot compare a city with itself")
	ErrInvalidSalary = errors.New("salary must be positive")
)

// RelativePurchasingPower returns how far a salary goes in a city compared
// with the national average, as a percentage.
//
// Salary cancels out of (salary/index) / (salary/100) * 100, so the result
// is always 10000/index, including for a zero salary.
func RelativePurchasingPower(salary, cityIndex float64) float64 {
	return 10000 / cityIndex
}

// EquivalentSalary returns the salary needed at targetIndex to match the
// standard of living salary affords at sourceIndex. sourceIndex must be
// non-zero.
func EquivalentSalary(salary, sourceIndex, targetIndex float64) float64 {
	return (salary / sourceIndex) * targetIndex
}

// Equivalence builds the relocation summary for moving salary from one
// city to another.
func Equivalence(salary float64, from, to models.CityRecord) (models.SalaryEquivalence, error) {
	if from.ID == to.ID {
		return models.SalaryEquivalence{}, ErrSameCity
	}
	if !(salary > 0) {
		return models.SalaryEquivalence{}, ErrInvalidSalary
	}

	equivalent := EquivalentSalary(salary, from.ColIndex, to.ColIndex)
	diff := PercentageDiff(equivalent, salary)

	formattedSalary := FormatCurrency(salary)
	formattedEquivalent := FormatCurrency(equivalent)

	return models.SalaryEquivalence{
		FromCity:            from.ID,
		ToCity:              to.ID,
		Salary:              salary,
		EquivalentSalary:    equivalent,
		Diff:                diff,
		Percentage:          FormatPercentage(diff),
		NeedsMore:           diff > 0,
		FormattedSalary:     formattedSalary,
		FormattedEquivalent: formattedEquivalent,
		Summary: fmt.Sprintf(
			"To maintain the same standard of living as %s in %s, you would need approximately %s in %s.",
			formattedSalary, from.Name, formattedEquivalent, to.Name,
		),
	}, nil
}

// ClassifyPower bands a relative purchasing power figure for the salary
// calculator bar.
func ClassifyPower(power float64) models.PowerBand {
	switch {
	case power > 110:
		return models.PowerMuchStronger
	case power > 100:
		return models.PowerStronger
	case power > 90:
		return models.PowerNearAverage
	case power < 80:
		return models.PowerMuchWeaker
	case power < 90:
		return models.PowerWeaker
	default:
		return models.PowerAverage
	}
}

// PowerSummary describes a relative purchasing power in words
func PowerSummary(power float64) string {
	if power > 100 {
		return fmt.Sprintf("Your salary goes %.1f%% further than the national average here", power-100)
	}
	return fmt.Sprintf("Your salary buys %.1f%% less than the national average here", 100-power)
}

// PurchasingPower builds the salary calculator view of a city
func PurchasingPower(salary float64, city models.CityRecord) models.PurchasingPowerReport {
	power := RelativePurchasingPower(salary, city.ColIndex)
	return models.PurchasingPowerReport{
		CityID:        city.ID,
		CityName:      city.Name,
		Salary:        salary,
		RelativePower: power,
		Band:          ClassifyPower(power),
		Summary:       PowerSummary(power),
	}
}
