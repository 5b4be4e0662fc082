package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Pizza is a priced item with its derived area and value ratio.
// Values are built by NewPizza and never change afterwards.
type Pizza struct {
	name       string
	size       SizeDescriptor
	price      decimal.Decimal
	area       float64
	valueRatio float64
}

// NewPizza builds a Pizza from an already computed area (cm²).
// A zero price is allowed and gives a value ratio of 0.
func NewPizza(name string, size SizeDescriptor, price decimal.Decimal, area float64) (Pizza, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Pizza{}, fmt.Errorf("%w: pizza name is empty", ErrInvalidInput)
	}
	if price.IsNegative() {
		return Pizza{}, fmt.Errorf("%w: pizza %q has negative price %s", ErrInvalidInput, name, price.String())
	}
	if area <= 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return Pizza{}, fmt.Errorf("%w: pizza %q has non-positive area %v", ErrInvalidInput, name, area)
	}

	var ratio float64
	if price.IsPositive() {
		ratio = area / price.InexactFloat64()
	}

	return Pizza{
		name:       name,
		size:       size,
		price:      price,
		area:       area,
		valueRatio: ratio,
	}, nil
}

func (p Pizza) Name() string           { return p.name }
func (p Pizza) Size() SizeDescriptor   { return p.size }
func (p Pizza) Price() decimal.Decimal { return p.price }
func (p Pizza) Area() float64          { return p.area }

// ValueRatio is the area bought per currency unit (cm² per €).
func (p Pizza) ValueRatio() float64 { return p.valueRatio }

// CostPer100 is the price of 100 cm² of this pizza.
func (p Pizza) CostPer100() float64 {
	return p.price.InexactFloat64() / p.area * CostPerAreaBase
}

func (p Pizza) String() string {
	return fmt.Sprintf("%s: %.2f %s for %s%s (%s%.2f per %.0f %s)",
		p.name, p.area, SquareCentimeter, CurrencySymbol, p.price.StringFixed(2),
		CurrencySymbol, p.CostPer100(), CostPerAreaBase, SquareCentimeter)
}
