// Package analysis runs the value comparison from ranking to printed recommendation.
package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/osse101/pizzavalue/internal/budget"
	"github.com/osse101/pizzavalue/internal/domain"
	"github.com/osse101/pizzavalue/internal/logger"
	"github.com/osse101/pizzavalue/internal/ranking"
	"github.com/osse101/pizzavalue/internal/report"
)

// Result is everything computed during a run
type Result struct {
	Ranked         []domain.Pizza
	Best           domain.Pizza
	Recommendation budget.Recommendation
}

// Service defines the analysis operations
type Service interface {
	Run(ctx context.Context, w io.Writer, pizzas []domain.Pizza, amount decimal.Decimal) (*Result, error)
}

type service struct {
	formatter *report.Formatter
}

// NewService creates a new analysis service
func NewService(formatter *report.Formatter) Service {
	if formatter == nil {
		formatter = report.NewFormatter()
	}
	return &service{formatter: formatter}
}

// Run ranks pizzas, writes the analysis to w, then writes the purchase
// recommendation for the best pizza with the given budget amount.
func (s *service) Run(ctx context.Context, w io.Writer, pizzas []domain.Pizza, amount decimal.Decimal) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted, "pizzas", len(pizzas), "budget", amount.StringFixed(2))

	ranked, err := ranking.Rank(pizzas)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRankFailed, err)
	}
	log.Debug(LogMsgRanked, "order", names(ranked))

	if err := s.formatter.WriteAnalysis(w, ranked); err != nil {
		return nil, fmt.Errorf(ErrMsgReportFailed, err)
	}

	best, err := ranking.Best(pizzas)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRankFailed, err)
	}
	log.Info(LogMsgBestValue, "pizza", best.Name(), "ratio", best.ValueRatio())

	rec, err := budget.Recommend(amount, best)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecommendFailed, err)
	}
	if rec.Count == 0 {
		log.Warn(LogMsgNothingAffordable, "pizza", best.Name(), "price", best.Price().StringFixed(2))
	}
	log.Info(LogMsgRecommendationMade, "count", rec.Count, "leftover", rec.Leftover.StringFixed(2))

	if err := s.formatter.WriteRecommendation(w, rec); err != nil {
		return nil, fmt.Errorf(ErrMsgReportFailed, err)
	}

	return &Result{
		Ranked:         ranked,
		Best:           best,
		Recommendation: rec,
	}, nil
}

func names(pizzas []domain.Pizza) []string {
	out := make([]string, len(pizzas))
	for i, p := range pizzas {
		out[i] = p.Name()
	}
	return out
}
