package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxModules bounds the total module count of a portfolio. Reinvestment stops buying once
// the portfolio reaches it.
const MaxModules = math.MaxInt32

// Strategy selects how surplus cash is reinvested at each year boundary
type Strategy string

const (
	// StrategyBuy converts surplus cash into modules on owned land
	StrategyBuy Strategy = "buy"
	// StrategyRent converts surplus cash into modules on rented land
	StrategyRent Strategy = "rent"
	// StrategyAlternate picks buy when the total module count is even, rent otherwise
	StrategyAlternate Strategy = "alternate"
)

// AllStrategies lists the supported strategies in a stable order
func AllStrategies() []Strategy {
	return []Strategy{StrategyBuy, StrategyRent, StrategyAlternate}
}

// ParseStrategy resolves a user supplied strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyBuy:
		return StrategyBuy, nil
	case StrategyRent:
		return StrategyRent, nil
	case StrategyAlternate, "alternating":
		return StrategyAlternate, nil
	}
	return "", fmt.Errorf("unknown strategy %q (expected buy, rent or alternate)", s)
}

// Valid reports whether the strategy is one of the supported values
func (s Strategy) Valid() bool {
	switch s {
	case StrategyBuy, StrategyRent, StrategyAlternate:
		return true
	}
	return false
}

// AssetClass holds the per-module economics shared by rented and owned modules
type AssetClass struct {
	Modules              int             `yaml:"modules" json:"modules"`
	CostPerModule        decimal.Decimal `yaml:"cost_per_module" json:"cost_per_module"`
	RevenuePerModule     decimal.Decimal `yaml:"revenue_per_module" json:"revenue_per_module"`
	MaintenancePerModule decimal.Decimal `yaml:"maintenance_per_module" json:"maintenance_per_module"`
}

// RentedClass describes modules deployed on rented land
type RentedClass struct {
	AssetClass `yaml:",inline"`

	// BaseRent is the aggregate monthly rent paid for the initial rented modules
	BaseRent decimal.Decimal `yaml:"base_rent" json:"base_rent"`
	// RentPerNewModule is added to the aggregate rent for every module bought later
	RentPerNewModule decimal.Decimal `yaml:"rent_per_new_module" json:"rent_per_new_module"`
}

// LandFinancing describes the loan taken for the initial owned land
type LandFinancing struct {
	LandValue          decimal.Decimal `yaml:"land_value" json:"land_value"`
	DownPaymentPercent decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	Installments       int             `yaml:"installments" json:"installments"`
	AnnualInterestRate decimal.Decimal `yaml:"annual_interest_rate" json:"annual_interest_rate"`
}

// OwnedClass describes modules deployed on owned land
type OwnedClass struct {
	AssetClass `yaml:",inline"`

	// LandInstallmentPerNewModule is the flat monthly installment added for each module bought later
	LandInstallmentPerNewModule decimal.Decimal `yaml:"land_installment_per_new_module" json:"land_installment_per_new_module"`

	Financing LandFinancing `yaml:"financing" json:"financing"`
}

// ContributionEvent is a one-time cash injection
type ContributionEvent struct {
	Month  int             `yaml:"month" json:"month"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// PercentageRule applies a percentage of operating profit from StartMonth onwards
type PercentageRule struct {
	StartMonth int             `yaml:"start_month" json:"start_month"`
	Percent    decimal.Decimal `yaml:"percent" json:"percent"`
}

// Parameters holds the global knobs of a projection
type Parameters struct {
	ProjectionYears int `yaml:"projection_years" json:"projection_years"`

	// StartDate anchors month 1 to a calendar month; optional
	StartDate time.Time `yaml:"start_date,omitempty" json:"start_date,omitzero"`

	MaxMonthlyWithdrawal decimal.Decimal `yaml:"max_monthly_withdrawal" json:"max_monthly_withdrawal"`
	CorrectionRate       decimal.Decimal `yaml:"correction_rate" json:"correction_rate"`
	LandAppreciationRate decimal.Decimal `yaml:"land_appreciation_rate" json:"land_appreciation_rate"`
	DefaultStrategy      Strategy        `yaml:"strategy,omitempty" json:"strategy,omitempty"`

	Contributions    []ContributionEvent `yaml:"contributions,omitempty" json:"contributions,omitempty"`
	WithdrawalRules  []PercentageRule    `yaml:"withdrawals,omitempty" json:"withdrawals,omitempty"`
	ReserveFundRules []PercentageRule    `yaml:"reserve_funds,omitempty" json:"reserve_funds,omitempty"`
}

// Configuration represents the complete input of a projection
type Configuration struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Rented     RentedClass `yaml:"rented" json:"rented"`
	Owned      OwnedClass  `yaml:"owned" json:"owned"`
	Parameters Parameters  `yaml:"parameters" json:"parameters"`
}

// HorizonMonths returns the number of monthly rows a run produces
func (c *Configuration) HorizonMonths() int {
	return c.Parameters.ProjectionYears * 12
}

// HasLandLoan reports whether the initial land is financed
func (c *Configuration) HasLandLoan() bool {
	return c.Owned.Financing.LandValue.IsPositive()
}

// GenerateAssumptions lists the modeling assumptions derived from the configuration
func (c *Configuration) GenerateAssumptions() []string {
	p := c.Parameters
	out := []string{
		fmt.Sprintf("Annual correction of unit economics: %s%%", p.CorrectionRate.StringFixed(2)),
		fmt.Sprintf("Annual land appreciation: %s%%", p.LandAppreciationRate.StringFixed(2)),
	}
	if p.MaxMonthlyWithdrawal.IsPositive() {
		out = append(out, fmt.Sprintf("Monthly withdrawal ceiling: $%s", p.MaxMonthlyWithdrawal.StringFixed(2)))
	} else {
		out = append(out, "Monthly withdrawal ceiling: none")
	}
	if c.HasLandLoan() {
		f := c.Owned.Financing
		out = append(out, fmt.Sprintf("Land loan: $%s, %s%% down, %d installments at %s%% a year",
			f.LandValue.StringFixed(2), f.DownPaymentPercent.StringFixed(2), f.Installments, f.AnnualInterestRate.StringFixed(2)))
	}
	out = append(out, "Reinvestment happens once a year; leftover cash below a module cost stays in cash")
	return out
}
