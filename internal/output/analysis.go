package output

import (
	"sort"

	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best strategy.
type Recommendation struct {
	Strategy         domain.Strategy
	FinalNetWorth    decimal.Decimal
	RunnerUp         domain.Strategy
	NetWorthChange   decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeStrategies ranks strategies by final net worth and compares the winner with the runner-up.
// Ties keep the order of the comparison.
func AnalyzeStrategies(results *domain.StrategyComparison) Recommendation {
	if results == nil || len(results.Results) == 0 {
		return Recommendation{}
	}
	ranks := make([]domain.ProjectionSummary, 0, len(results.Results))
	for _, r := range results.Results {
		ranks = append(ranks, r.Summary)
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].FinalNetWorth.GreaterThan(ranks[j].FinalNetWorth) })

	best := ranks[0]
	rec := Recommendation{Strategy: best.Strategy, FinalNetWorth: best.FinalNetWorth}
	if len(ranks) < 2 {
		return rec
	}
	next := ranks[1]
	rec.RunnerUp = next.Strategy
	rec.NetWorthChange = best.FinalNetWorth.Sub(next.FinalNetWorth)
	if !next.FinalNetWorth.IsZero() {
		rec.PercentageChange = rec.NetWorthChange.Div(next.FinalNetWorth.Abs()).Mul(decimalHundred)
	}
	return rec
}
