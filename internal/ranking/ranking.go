// Package ranking orders pizzas by value for money.
package ranking

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/osse101/pizzavalue/internal/domain"
)

// Best returns the pizza with the highest value ratio.
// On ties the earliest pizza in input order wins.
func Best(items []domain.Pizza) (domain.Pizza, error) {
	if len(items) == 0 {
		return domain.Pizza{}, fmt.Errorf("best: %w", domain.ErrEmptyInput)
	}

	best := items[0]
	for _, p := range items[1:] {
		if p.ValueRatio() > best.ValueRatio() {
			best = p
		}
	}
	return best, nil
}

// Rank returns a copy of items sorted by value ratio, best first.
// Pizzas with equal ratios keep their input order. items is not modified.
func Rank(items []domain.Pizza) ([]domain.Pizza, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("rank: %w", domain.ErrEmptyInput)
	}

	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, byRatioDesc)
	return ranked, nil
}

func byRatioDesc(a, b domain.Pizza) int {
	return cmp.Compare(b.ValueRatio(), a.ValueRatio())
}
