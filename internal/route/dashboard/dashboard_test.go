package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ShadowWhisperer/MyStack/internal/model"
)

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestBuildSummaryMixedHoldings(t *testing.T) {
	metalList := []model.Metal{
		{Name: "1oz gold bar", CurrentValue: money("2100"), Cost: money("1900")},
		{Name: "10oz silver bar", CurrentValue: money("310"), Cost: money("250")},
	}
	coinList := []model.Coin{
		{Name: "Morgan dollar", Worth: money("95"), Cost: money("110")},
	}
	goldbackList := []model.Goldback{
		// 25/1000 * 2000 * 2 * 4 = 400
		{Denomination: money("25"), Count: 4, Cost: money("380")},
		// 0.5/1000 * 2000 * 2 * 1 = 2
		{Denomination: money("0.5"), Count: 1, Cost: money("3")},
	}

	summary := buildSummary(metalList, coinList, goldbackList, money("2000"))

	assert.Equal(t, 2, summary.Metals.Count)
	assert.Equal(t, "2410", summary.Metals.Value)
	assert.Equal(t, "2150", summary.Metals.Cost)
	assert.Equal(t, "260", summary.Metals.GainLoss)
	assert.Equal(t, "12.09", summary.Metals.GainLossPercent)
	assert.False(t, summary.Metals.Loss)

	assert.Equal(t, 1, summary.Coins.Count)
	assert.Equal(t, "95", summary.Coins.Value)
	assert.Equal(t, "-15", summary.Coins.GainLoss)
	assert.True(t, summary.Coins.Loss)

	assert.Equal(t, 2, summary.Goldbacks.Count)
	assert.Equal(t, "402", summary.Goldbacks.Value)
	assert.Equal(t, "383", summary.Goldbacks.Cost)
	assert.Equal(t, "19", summary.Goldbacks.GainLoss)
	assert.Equal(t, "100.5", summary.GoldbackUnits)

	assert.Equal(t, 5, summary.Combined.Count)
	assert.Equal(t, "2907", summary.Combined.Value)
	assert.Equal(t, "2643", summary.Combined.Cost)
	assert.Equal(t, "264", summary.Combined.GainLoss)
	assert.Equal(t, "9.99", summary.Combined.GainLossPercent)
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := buildSummary(nil, nil, nil, money("2000"))

	assert.Equal(t, 0, summary.Combined.Count)
	assert.Equal(t, "0", summary.Combined.Value)
	assert.Equal(t, "0", summary.Combined.Cost)
	assert.Equal(t, "0", summary.Combined.GainLoss)
	// No cost means no percentage, not a division error.
	assert.Equal(t, "0", summary.Combined.GainLossPercent)
	assert.Equal(t, "0", summary.GoldbackUnits)
}

func TestBuildSummaryGoldbackWorthTracksGoldPrice(t *testing.T) {
	goldbackList := []model.Goldback{
		{Denomination: money("1"), Count: 10, Cost: money("40")},
	}

	atTwoThousand := buildSummary(nil, nil, goldbackList, money("2000"))
	atThreeThousand := buildSummary(nil, nil, goldbackList, money("3000"))

	assert.Equal(t, "40", atTwoThousand.Goldbacks.Value)
	assert.Equal(t, "60", atThreeThousand.Goldbacks.Value)
	assert.Equal(t, "0", atTwoThousand.Goldbacks.GainLoss)
	assert.Equal(t, "20", atThreeThousand.Goldbacks.GainLoss)
}
