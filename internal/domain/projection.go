package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRow is the closing snapshot of a single projected month
type MonthlyRow struct {
	Month int       `json:"month"`
	Year  int       `json:"year"`
	Date  time.Time `json:"date,omitzero"`

	// Module counts
	ActiveModules int `json:"active_modules"`
	OwnedModules  int `json:"owned_modules"`
	RentedModules int `json:"rented_modules"`

	// Monthly operating figures
	Revenue             decimal.Decimal `json:"revenue"`
	Maintenance         decimal.Decimal `json:"maintenance"`
	Rent                decimal.Decimal `json:"rent"`
	NewLandInstallments decimal.Decimal `json:"new_land_installments"`
	OperatingProfit     decimal.Decimal `json:"operating_profit"`

	// Initial land loan
	LoanInterest     decimal.Decimal `json:"loan_interest"`
	LoanAmortization decimal.Decimal `json:"loan_amortization"`
	LoanInstallment  decimal.Decimal `json:"loan_installment"`
	LoanBalance      decimal.Decimal `json:"loan_balance"`

	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`

	// Cash events
	Contribution decimal.Decimal `json:"contribution"`
	Fund         decimal.Decimal `json:"fund"`
	Withdrawal   decimal.Decimal `json:"withdrawal"`

	// Balances at month close
	Cash                  decimal.Decimal `json:"cash"`
	InvestedCapital       decimal.Decimal `json:"invested_capital"`
	CumulativeFund        decimal.Decimal `json:"cumulative_fund"`
	CumulativeWithdrawals decimal.Decimal `json:"cumulative_withdrawals"`
	ModulesPurchased      int             `json:"modules_purchased"`

	// Net worth
	NetWorth             decimal.Decimal `json:"net_worth"`
	LandEquity           decimal.Decimal `json:"land_equity"`
	LandMarketValue      decimal.Decimal `json:"land_market_value"`
	LandPatrimonialValue decimal.Decimal `json:"land_patrimonial_value"`

	// Cumulative disbursements
	CumulativeInterest            decimal.Decimal `json:"cumulative_interest"`
	CumulativeAmortization        decimal.Decimal `json:"cumulative_amortization"`
	CumulativeRent                decimal.Decimal `json:"cumulative_rent"`
	CumulativeNewLandInstallments decimal.Decimal `json:"cumulative_new_land_installments"`
	TotalOutlay                   decimal.Decimal `json:"total_outlay"`
}

// IsYearEnd reports whether the row closes a simulated year
func (r *MonthlyRow) IsYearEnd() bool {
	return r.Month%12 == 0
}

// HasBrokenEven reports whether net worth covers the capital invested so far
func (r *MonthlyRow) HasBrokenEven() bool {
	return r.NetWorth.GreaterThanOrEqual(r.InvestedCapital)
}

// ProjectionSummary provides the key metrics of a single run
type ProjectionSummary struct {
	Strategy             Strategy        `json:"strategy"`
	Months               int             `json:"months"`
	FinalNetWorth        decimal.Decimal `json:"final_net_worth"`
	FinalInvestedCapital decimal.Decimal `json:"final_invested_capital"`
	FinalCash            decimal.Decimal `json:"final_cash"`
	FinalOwnedModules    int             `json:"final_owned_modules"`
	FinalRentedModules   int             `json:"final_rented_modules"`
	ModulesPurchased     int             `json:"modules_purchased"`
	TotalWithdrawals     decimal.Decimal `json:"total_withdrawals"`
	TotalFund            decimal.Decimal `json:"total_fund"`
	TotalOutlay          decimal.Decimal `json:"total_outlay"`
	ROIPercent           decimal.Decimal `json:"roi_percent"`
	BreakEvenMonth       int             `json:"break_even_month"`  // 0 when never reached
	LoanPayoffMonth      int             `json:"loan_payoff_month"` // 0 when no loan or not paid off
}

// ProjectionResult is the output of one engine run
type ProjectionResult struct {
	Strategy    Strategy          `json:"strategy"`
	Fingerprint string            `json:"fingerprint"`
	Rows        []MonthlyRow      `json:"rows"`
	Summary     ProjectionSummary `json:"summary"`
}

// FinalRow returns the last row of the run, or nil when the run is empty
func (pr *ProjectionResult) FinalRow() *MonthlyRow {
	if len(pr.Rows) == 0 {
		return nil
	}
	return &pr.Rows[len(pr.Rows)-1]
}

// YearEndRows returns the rows that close each simulated year
func (pr *ProjectionResult) YearEndRows() []MonthlyRow {
	out := make([]MonthlyRow, 0, len(pr.Rows)/12)
	for _, r := range pr.Rows {
		if r.IsYearEnd() {
			out = append(out, r)
		}
	}
	return out
}

// StrategyComparison groups runs of the same configuration under different strategies
type StrategyComparison struct {
	ConfigurationName         string             `json:"configuration_name"`
	Results                   []ProjectionResult `json:"results"`
	BestNetWorthStrategy      Strategy           `json:"best_net_worth_strategy"`
	EarliestBreakEvenStrategy Strategy           `json:"earliest_break_even_strategy,omitempty"`
	Assumptions               []string           `json:"assumptions"`
}
