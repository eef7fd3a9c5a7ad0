package compare

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupeeSymbol = "₹"

var indianEnglish = language.MustParse("en-IN")

// FormatCurrency renders an INR amount rounded to whole rupees with Indian
// digit grouping, e.g. ₹12,34,567.
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return rupeeSymbol + "NaN"
	case math.IsInf(amount, 1):
		return rupeeSymbol + "∞"
	case math.IsInf(amount, -1):
		return "-" + rupeeSymbol + "∞"
	}

	// Half away from zero
	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}

	p := message.NewPrinter(indianEnglish)
	return sign + rupeeSymbol + p.Sprint(number.Decimal(math.Abs(rounded), number.MaxFractionDigits(0)))
}
