package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoldbackWorth(t *testing.T) {
	tests := []struct {
		name         string
		denomination string
		count        int
		goldPrice    string
		expected     string
	}{
		{"four twenty-fives at 2000", "25", 4, "2000", "400"},
		{"one half note at 3000", "0.5", 1, "3000", "3"},
		{"single one at 2050", "1", 1, "2050", "4.1"},
		{"zero count", "25", 0, "2000", "0"},
		{"zero gold price", "25", 4, "0", "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			worth := GoldbackWorth(
				decimal.RequireFromString(test.denomination),
				test.count,
				decimal.RequireFromString(test.goldPrice),
			)

			assert.Equal(t, test.expected, worth.String())
		})
	}
}

func TestGoldbackUnits(t *testing.T) {
	units := GoldbackUnits(decimal.RequireFromString("25"), 4)
	assert.Equal(t, "100", units.String())

	units = GoldbackUnits(decimal.RequireFromString("0.5"), 3)
	assert.Equal(t, "1.5", units.String())
}

func TestGainLoss(t *testing.T) {
	gain := GainLoss(decimal.NewFromInt(2500), decimal.NewFromInt(2000))
	assert.Equal(t, "500", gain.String())

	loss := GainLoss(decimal.NewFromInt(1800), decimal.NewFromInt(2000))
	assert.Equal(t, "-200", loss.String())
}

func TestGainLossPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		cost     string
		expected string
	}{
		{"gain", "2500", "2000", "25"},
		{"loss", "1800", "2000", "-10"},
		{"break even", "2000", "2000", "0"},
		{"zero cost guards division", "123.45", "0", "0"},
		{"negative cost guards division", "123.45", "-5", "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			percent := GainLossPercent(
				decimal.RequireFromString(test.current),
				decimal.RequireFromString(test.cost),
			)

			assert.True(
				t,
				percent.Equal(decimal.RequireFromString(test.expected)),
				"expected %s, got %s", test.expected, percent,
			)
		})
	}
}
