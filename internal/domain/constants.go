package domain

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes every money figure.
const CurrencySymbol = "€"

// Size units
const (
	UnitCentimeter   = "cm"
	DimensionSep     = "x"
	SquareCentimeter = "cm²"
)

// CostPerAreaBase is the area (cm²) used for the normalized cost figure.
const CostPerAreaBase = 100.0

// DefaultBudget is the spending amount of the demonstration run.
var DefaultBudget = decimal.RequireFromString("20.00")
