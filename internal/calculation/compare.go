package calculation

import (
	"context"
	"fmt"

	"github.com/modproj/projector/internal/domain"
)

// RunStrategies runs the configuration once per strategy and compares the outcomes.
// With no strategies given, all supported strategies are run.
func (ce *CalculationEngine) RunStrategies(ctx context.Context, config *domain.Configuration, strategies ...domain.Strategy) (*domain.StrategyComparison, error) {
	if len(strategies) == 0 {
		strategies = domain.AllStrategies()
	}

	comparison := &domain.StrategyComparison{
		Results: make([]domain.ProjectionResult, 0, len(strategies)),
	}
	if config != nil {
		comparison.ConfigurationName = config.Name
		comparison.Assumptions = config.GenerateAssumptions()
	}

	for _, strategy := range strategies {
		result, err := ce.RunProjection(ctx, config, strategy)
		if err != nil {
			return nil, fmt.Errorf("RunProjection %s failed: %w", strategy, err)
		}
		comparison.Results = append(comparison.Results, *result)
	}

	comparison.BestNetWorthStrategy = bestNetWorth(comparison.Results)
	comparison.EarliestBreakEvenStrategy = earliestBreakEven(comparison.Results)
	return comparison, nil
}

// bestNetWorth picks the highest final net worth; ties keep the earlier strategy
func bestNetWorth(results []domain.ProjectionResult) domain.Strategy {
	if len(results) == 0 {
		return ""
	}
	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].Summary.FinalNetWorth.GreaterThan(results[best].Summary.FinalNetWorth) {
			best = i
		}
	}
	return results[best].Strategy
}

// earliestBreakEven picks the strategy that breaks even first; empty when none does
func earliestBreakEven(results []domain.ProjectionResult) domain.Strategy {
	var best domain.Strategy
	bestMonth := 0
	for _, r := range results {
		m := r.Summary.BreakEvenMonth
		if m > 0 && (bestMonth == 0 || m < bestMonth) {
			best, bestMonth = r.Strategy, m
		}
	}
	return best
}
