package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// FromPercent converts a percent number (8 for 8%) into a fraction
func FromPercent(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// PercentOf returns pct percent of amount
func PercentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// MonthlyRate converts an annual percent rate into a monthly fraction
func MonthlyRate(annualPct decimal.Decimal) decimal.Decimal {
	return annualPct.Div(hundred).Div(twelve)
}

// GrowthFactor returns 1 + pct/100
func GrowthFactor(pct decimal.Decimal) decimal.Decimal {
	return one.Add(FromPercent(pct))
}

// CompoundFactor returns (1 + annualPct/100)^(months/12).
// Whole years are compounded exactly; the partial year goes through float64.
func CompoundFactor(annualPct decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 || annualPct.IsZero() {
		return one
	}
	base := GrowthFactor(annualPct)
	factor := base.Pow(decimal.NewFromInt(int64(months / 12)))
	if rem := months % 12; rem != 0 {
		partial := math.Pow(base.InexactFloat64(), float64(rem)/12)
		factor = factor.Mul(decimal.NewFromFloat(partial))
	}
	return factor
}

// WholeUnits returns how many units of cost fit into amount, saturating at math.MaxInt.
// A non-positive cost or amount yields zero.
func WholeUnits(amount, cost decimal.Decimal) int {
	if !cost.IsPositive() || amount.LessThan(cost) {
		return 0
	}
	n := amount.Div(cost).Floor()
	// Div rounds at DivisionPrecision, which can push a quotient up to the next integer
	for n.IsPositive() && n.Mul(cost).GreaterThan(amount) {
		n = n.Sub(one)
	}
	if n.GreaterThan(maxInt) {
		return math.MaxInt
	}
	return int(n.IntPart())
}

var maxInt = decimal.NewFromInt(int64(math.MaxInt))

// Min returns the smaller of a and b
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
