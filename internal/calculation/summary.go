package calculation

import (
	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ReturnOnInvestment returns (net worth - invested) / invested as a percentage.
// Zero invested capital yields zero.
func ReturnOnInvestment(netWorth, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return netWorth.Sub(invested).Div(invested).Mul(decimal.NewFromInt(100))
}

// BreakEvenMonth returns the first month whose net worth covers the invested capital, or 0
func BreakEvenMonth(rows []domain.MonthlyRow) int {
	for i := range rows {
		if rows[i].HasBrokenEven() {
			return rows[i].Month
		}
	}
	return 0
}

// LoanPayoffMonth returns the first month that closes with a zero land loan balance after
// having paid amortization, or 0 when there is no loan or it is still outstanding
func LoanPayoffMonth(rows []domain.MonthlyRow) int {
	for i := range rows {
		if rows[i].LoanAmortization.IsPositive() && rows[i].LoanBalance.IsZero() {
			return rows[i].Month
		}
	}
	return 0
}

// Summarize derives the key metrics of a run from its rows
func Summarize(strategy domain.Strategy, rows []domain.MonthlyRow) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		Strategy:        strategy,
		Months:          len(rows),
		BreakEvenMonth:  BreakEvenMonth(rows),
		LoanPayoffMonth: LoanPayoffMonth(rows),
	}
	if len(rows) == 0 {
		return summary
	}

	for i := range rows {
		summary.ModulesPurchased += rows[i].ModulesPurchased
	}

	last := rows[len(rows)-1]
	summary.FinalNetWorth = last.NetWorth
	summary.FinalInvestedCapital = last.InvestedCapital
	summary.FinalCash = last.Cash
	summary.FinalOwnedModules = last.OwnedModules
	summary.FinalRentedModules = last.RentedModules
	summary.TotalWithdrawals = last.CumulativeWithdrawals
	summary.TotalFund = last.CumulativeFund
	summary.TotalOutlay = last.TotalOutlay
	summary.ROIPercent = ReturnOnInvestment(last.NetWorth, last.InvestedCapital)
	return summary
}
