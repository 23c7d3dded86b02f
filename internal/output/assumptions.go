package output

import (
	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modeling assumptions rendered when a comparison carries none.
var DefaultAssumptions = []string{
	"Unit costs, revenue, maintenance, rent and land installments are corrected once a year",
	"Land value appreciates monthly at the compounded annual rate",
	"Surplus cash is reinvested only at year boundaries, in whole modules",
	"Withdrawals and reserve fund are taken only from positive operating profit",
}

// assumptionsFor returns the comparison's own assumptions or the defaults.
func assumptionsFor(results *domain.StrategyComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}

var decimalHundred = decimal.NewFromInt(100)
