package calculation

import (
	dec "github.com/modproj/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Distribution is the part of a month's operating profit paid out or set aside
type Distribution struct {
	Withdrawal decimal.Decimal
	Fund       decimal.Decimal
}

// Total returns withdrawal plus fund
func (d Distribution) Total() decimal.Decimal {
	return d.Withdrawal.Add(d.Fund)
}

func noDistribution() Distribution {
	return Distribution{Withdrawal: decimal.Zero, Fund: decimal.Zero}
}

// AllocateDistribution splits operating profit into withdrawal and reserve fund.
//
// Nothing is distributed unless profit is positive. The ceiling, when positive, clamps the
// withdrawal only. The clamped withdrawal and the fund are then scaled down together so that
// they never exceed the cash on hand; with no positive cash both are zero.
func AllocateDistribution(profit, cash, withdrawalPct, fundPct, ceiling decimal.Decimal) Distribution {
	if !profit.IsPositive() {
		return noDistribution()
	}

	withdrawal := dec.PercentOf(profit, withdrawalPct)
	fund := dec.PercentOf(profit, fundPct)
	if ceiling.IsPositive() && withdrawal.GreaterThan(ceiling) {
		withdrawal = ceiling
	}

	requested := withdrawal.Add(fund)
	if requested.GreaterThan(cash) {
		if !cash.IsPositive() {
			return noDistribution()
		}
		// the scaled pair sums to exactly cash; the fund takes the rounding residue
		if fund.IsZero() {
			return Distribution{Withdrawal: cash, Fund: decimal.Zero}
		}
		withdrawal = withdrawal.Mul(cash).Div(requested)
		fund = dec.Max(cash.Sub(withdrawal), decimal.Zero)
	}

	return Distribution{Withdrawal: withdrawal, Fund: fund}
}

func (s *simulationState) applyDistribution(d Distribution) {
	s.cash = s.cash.Sub(d.Total())
	s.cumulativeWithdrawals = s.cumulativeWithdrawals.Add(d.Withdrawal)
	s.cumulativeFund = s.cumulativeFund.Add(d.Fund)
}
