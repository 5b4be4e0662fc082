// Package report renders the value ranking and the budget recommendation as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/pizzavalue/internal/budget"
	"github.com/osse101/pizzavalue/internal/domain"
)

// Formatter renders plain text reports
type Formatter struct {
	banner string
}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{banner: strings.Repeat(BannerRune, BannerWidth)}
}

// FormatCurrency formats an amount with the currency symbol and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return domain.CurrencySymbol + amount.StringFixed(2)
}

// formatCurrencyFloat is FormatCurrency for derived, inexact figures
func formatCurrencyFloat(amount float64) string {
	return fmt.Sprintf("%s%.2f", domain.CurrencySymbol, amount)
}

// WriteAnalysis writes ranked pizzas, best first, followed by the best value line.
// ranked must already be in rank order.
func (f *Formatter) WriteAnalysis(w io.Writer, ranked []domain.Pizza) error {
	if len(ranked) == 0 {
		return fmt.Errorf("write analysis: %w", domain.ErrEmptyInput)
	}

	var b strings.Builder
	f.writeTitle(&b, TitleAnalysis)
	b.WriteString("\n")

	for i, p := range ranked {
		fmt.Fprintf(&b, FmtRankHeading, i+1, p.Name())
		fmt.Fprintf(&b, FmtArea, p.Area())
		fmt.Fprintf(&b, FmtPrice, FormatCurrency(p.Price()))
		fmt.Fprintf(&b, FmtValue, p.ValueRatio())
		fmt.Fprintf(&b, FmtCost, formatCurrencyFloat(p.CostPer100()))
		b.WriteString("\n")
	}

	best := ranked[0]
	b.WriteString(f.banner + "\n")
	fmt.Fprintf(&b, FmtBestValue, best.Name())
	fmt.Fprintf(&b, FmtBestRatio, best.ValueRatio())
	b.WriteString(f.banner + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRecommendation writes how many of the recommended pizza the budget buys
func (f *Formatter) WriteRecommendation(w io.Writer, rec budget.Recommendation) error {
	var b strings.Builder
	b.WriteString("\n")
	f.writeTitle(&b, TitleRecommendations)
	b.WriteString("\n")

	fmt.Fprintf(&b, FmtBudget, FormatCurrency(rec.Budget))
	fmt.Fprintf(&b, FmtBuy, rec.Count, rec.Pizza.Name())
	fmt.Fprintf(&b, FmtTotalArea, rec.TotalArea)
	fmt.Fprintf(&b, FmtLeftover, FormatCurrency(rec.Leftover))

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *Formatter) writeTitle(b *strings.Builder, title string) {
	b.WriteString(f.banner + "\n")
	b.WriteString(title + "\n")
	b.WriteString(f.banner + "\n")
}
