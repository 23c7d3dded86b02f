package calculation

import (
	dec "github.com/modproj/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// NetWorthSnapshot is the mark-to-market position at a month close
type NetWorthSnapshot struct {
	LandMarketValue      decimal.Decimal
	LandPatrimonialValue decimal.Decimal
	TotalAssets          decimal.Decimal
	TotalLiabilities     decimal.Decimal
	NetWorth             decimal.Decimal
	TotalOutlay          decimal.Decimal
}

// landMarketValue appreciates the initial land price; zero when no land was financed
func (s *simulationState) landMarketValue(month int, appreciationPct decimal.Decimal) decimal.Decimal {
	if s.loan == nil {
		return decimal.Zero
	}
	return s.landPrice.Mul(dec.CompoundFactor(appreciationPct, month))
}

// netWorth values the portfolio. The outstanding loan is netted inside the land
// patrimonial value and is also carried as the only liability.
func (s *simulationState) netWorth(month int, appreciationPct decimal.Decimal) NetWorthSnapshot {
	balance := s.loan.OutstandingBalance()
	market := s.landMarketValue(month, appreciationPct)
	patrimonial := market.Sub(balance)

	assets := s.owned.bookValue.
		Add(s.rented.bookValue).
		Add(s.cash).
		Add(s.cumulativeFund).
		Add(patrimonial)

	interest := decimal.Zero
	if s.loan != nil {
		interest = s.loan.InterestPaid
	}
	outlay := s.investedCapital.
		Add(interest).
		Add(s.cumulativeRent).
		Add(s.cumulativeNewLandInstallments)

	return NetWorthSnapshot{
		LandMarketValue:      market,
		LandPatrimonialValue: patrimonial,
		TotalAssets:          assets,
		TotalLiabilities:     balance,
		NetWorth:             assets.Sub(balance),
		TotalOutlay:          outlay,
	}
}
