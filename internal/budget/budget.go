// Package budget works out how many of the best value pizza a budget buys.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/pizzavalue/internal/domain"
)

// Recommendation is the purchase suggestion for a budget
type Recommendation struct {
	Pizza     domain.Pizza
	Budget    decimal.Decimal
	Count     int64
	TotalArea float64
	Leftover  decimal.Decimal
}

// Recommend determines how many of best can be bought with budget.
// Count is floor(budget / price), so it is 0 when the pizza costs more than
// the budget, and Leftover is what remains after buying Count pizzas.
func Recommend(budget decimal.Decimal, best domain.Pizza) (Recommendation, error) {
	if budget.IsNegative() {
		return Recommendation{}, fmt.Errorf(ErrMsgNegativeBudgetFmt, budget.StringFixed(2), domain.ErrInvalidInput)
	}

	price := best.Price()
	if !price.IsPositive() {
		return Recommendation{}, fmt.Errorf(ErrMsgFreeItemFmt, best.Name(), domain.ErrFreeItem)
	}

	count, leftover := affordableQuantity(budget, price)

	return Recommendation{
		Pizza:     best,
		Budget:    budget,
		Count:     count,
		TotalArea: float64(count) * best.Area(),
		Leftover:  leftover,
	}, nil
}

// affordableQuantity splits balance into whole units of unitPrice and the remainder.
// unitPrice must be positive and balance non-negative.
func affordableQuantity(balance, unitPrice decimal.Decimal) (int64, decimal.Decimal) {
	if balance.LessThan(unitPrice) {
		return 0, balance
	}
	quantity, remainder := balance.QuoRem(unitPrice, 0)
	return quantity.IntPart(), remainder
}
