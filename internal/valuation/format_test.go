package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		weight   string
		expected string
	}{
		{"0.5", "1/2"},
		{"0.25", "1/4"},
		{"0.1", "1/10"},
		{"0.05", "1/20"},
		{"0.02", "1/50"},
		{"0.01", "1/100"},
		{"0.005", "1/200"},
		// Tolerance catches float noise near a preset.
		{"0.0999999", "1/10"},
		{"0.2500001", "1/4"},
		// Outside the tolerance, the raw value renders.
		{"0.1002", "0.1002"},
		{"3", "3"},
		{"3.0", "3"},
		{"1.23456789", "1.234568"},
		{"10.500000", "10.5"},
		{"0.3333333333", "0.333333"},
	}

	for _, test := range tests {
		t.Run(test.weight, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatWeight(decimal.RequireFromString(test.weight)))
		})
	}
}

func TestFormatDenomination(t *testing.T) {
	tests := []struct {
		denomination string
		expected     string
	}{
		{"0.5", "1/2"},
		{"0.25", "1/4"},
		{"1", "1"},
		{"5", "5"},
		{"25", "25"},
		{"50", "50"},
		{"12.345", "12.35"},
	}

	for _, test := range tests {
		t.Run(test.denomination, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatDenomination(decimal.RequireFromString(test.denomination)))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"400", "400"},
		{"3.5", "3.5"},
		{"14.50", "14.5"},
		{"2050.255", "2050.26"},
		{"0", "0"},
		{"-12.30", "-12.3"},
	}

	for _, test := range tests {
		t.Run(test.amount, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatAmount(decimal.RequireFromString(test.amount)))
		})
	}
}
