// Package valuation computes holding values and display strings for MyStack.
package valuation

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// goldbackDivisor converts a Goldback denomination into troy ounces of gold:
// each denomination unit contains 1/1000 oz.
var goldbackDivisor = decimal.NewFromInt(1000)

// goldbackPremium is the fixed exchange premium over melt value. It is not
// derived from any feed.
var goldbackPremium = decimal.NewFromInt(2)

// GoldbackWorth values a stack of Goldback notes against the given gold spot
// price. Worth is derived on every read and never stored.
func GoldbackWorth(denomination decimal.Decimal, count int, goldPrice decimal.Decimal) decimal.Decimal {
	return denomination.
		Div(goldbackDivisor).
		Mul(goldPrice).
		Mul(goldbackPremium).
		Mul(decimal.NewFromInt(int64(count)))
}

// GoldbackUnits totals the denomination units in a stack of notes.
func GoldbackUnits(denomination decimal.Decimal, count int) decimal.Decimal {
	return denomination.Mul(decimal.NewFromInt(int64(count)))
}

// GainLoss returns the absolute gain or loss of a holding against its cost.
func GainLoss(currentValue decimal.Decimal, cost decimal.Decimal) decimal.Decimal {
	return currentValue.Sub(cost)
}

// GainLossPercent returns the percentage gain or loss against cost.
//
// Holdings without a positive cost yield exactly zero, never a division
// error.
func GainLossPercent(currentValue decimal.Decimal, cost decimal.Decimal) decimal.Decimal {
	if !cost.IsPositive() {
		return decimal.Zero
	}

	return currentValue.Sub(cost).Div(cost).Mul(hundred)
}
