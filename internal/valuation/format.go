package valuation

import (
	"github.com/shopspring/decimal"
)

// fractionTolerance is how far a value may sit from a preset and still use
// its fraction label. Weights pass through float conversions on the way in,
// so an exact comparison would miss values like 0.0999999.
var fractionTolerance = decimal.New(1, -4)

var fractions = []struct {
	Value decimal.Decimal
	Label string
}{
	{decimal.New(5, -1), "1/2"},
	{decimal.New(25, -2), "1/4"},
	{decimal.New(1, -1), "1/10"},
	{decimal.New(5, -2), "1/20"},
	{decimal.New(2, -2), "1/50"},
	{decimal.New(1, -2), "1/100"},
	{decimal.New(5, -3), "1/200"},
}

func fractionLabel(value decimal.Decimal) (string, bool) {
	for _, fraction := range fractions {
		if value.Sub(fraction.Value).Abs().LessThanOrEqual(fractionTolerance) {
			return fraction.Label, true
		}
	}

	return "", false
}

// FormatWeight renders a weight in troy ounces: the common fractional sizes
// render as fraction labels, everything else with up to six decimal places,
// trailing zeros stripped, integers without a decimal point.
func FormatWeight(weight decimal.Decimal) string {
	if label, ok := fractionLabel(weight); ok {
		return label
	}

	return weight.Round(6).String()
}

// FormatDenomination renders a Goldback denomination: fractional notes render
// as fraction labels, everything else with up to two decimal places.
func FormatDenomination(denomination decimal.Decimal) string {
	if label, ok := fractionLabel(denomination); ok {
		return label
	}

	return denomination.Round(2).String()
}

// FormatAmount renders a money amount with up to two decimal places,
// trailing zeros stripped.
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(2).String()
}
