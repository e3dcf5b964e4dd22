package model

import (
	"github.com/shopspring/decimal"
)

// User represents a user in the database
type User struct {
	ID       int
	Username string
}

// Metal represents a bulk metal holding, a bar or round weighed in troy ounces.
//
// CurrentValue is a stored figure the owner revalues by hand, not a live
// price derivation.
type Metal struct {
	ID           int
	Name         string
	Type         string
	Weight       decimal.Decimal
	Purity       decimal.Decimal
	Cost         decimal.Decimal
	CurrentValue decimal.Decimal
	Notes        string
}

// Coin represents a collectible coin with a hand-entered numismatic worth.
type Coin struct {
	ID       int
	Name     string
	Material string
	Year     int
	Worth    decimal.Decimal
	Cost     decimal.Decimal
	Image    string
	Notes    string
}

// Goldback represents a stack of Goldback notes of a single denomination.
//
// Worth is never stored for these: it is always derived from the cached
// gold spot price when displayed.
type Goldback struct {
	ID           int
	Denomination decimal.Decimal
	Count        int
	Cost         decimal.Decimal
	Notes        string
}

// MetalTypes lists the metals a bulk holding can be made of.
var MetalTypes = []string{"gold", "silver"}

// CoinMaterials lists the accepted coin materials.
var CoinMaterials = []string{"gold", "silver", "other"}
