package calculation

import (
	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// classState holds the current economics of one asset class
type classState struct {
	modules     int
	unitCost    decimal.Decimal
	revenue     decimal.Decimal
	maintenance decimal.Decimal
	// bookValue is the historical acquisition total used for net worth
	bookValue decimal.Decimal
}

func newClassState(a domain.AssetClass) classState {
	return classState{
		modules:     a.Modules,
		unitCost:    a.CostPerModule,
		revenue:     a.RevenuePerModule,
		maintenance: a.MaintenancePerModule,
		bookValue:   a.CostPerModule.Mul(decimal.NewFromInt(int64(a.Modules))),
	}
}

// simulationState is owned by a single run and mutated in place month by month
type simulationState struct {
	rented classState
	owned  classState

	rentPerNewModule            decimal.Decimal
	landInstallmentPerNewModule decimal.Decimal
	aggregateRent               decimal.Decimal
	newLandInstallments         decimal.Decimal

	cash                  decimal.Decimal
	investedCapital       decimal.Decimal
	cumulativeFund        decimal.Decimal
	cumulativeWithdrawals decimal.Decimal

	cumulativeRent                decimal.Decimal
	cumulativeNewLandInstallments decimal.Decimal

	loan      *LandLoan
	landPrice decimal.Decimal
}

// newSimulationState prepares the opening position. The capital already tied up in the
// initial modules and the land down payment counts as invested.
func newSimulationState(cfg *domain.Configuration) *simulationState {
	s := &simulationState{
		rented:                      newClassState(cfg.Rented.AssetClass),
		owned:                       newClassState(cfg.Owned.AssetClass),
		rentPerNewModule:            cfg.Rented.RentPerNewModule,
		landInstallmentPerNewModule: cfg.Owned.LandInstallmentPerNewModule,
		aggregateRent:               cfg.Rented.BaseRent,
		newLandInstallments:         decimal.Zero,
		loan:                        NewLandLoan(cfg.Owned.Financing),
	}
	s.investedCapital = s.rented.bookValue.Add(s.owned.bookValue)
	if s.loan != nil {
		s.landPrice = cfg.Owned.Financing.LandValue
		s.investedCapital = s.investedCapital.Add(s.loan.DownPayment)
	}
	return s
}

func (s *simulationState) totalModules() int {
	return s.rented.modules + s.owned.modules
}

func (s *simulationState) class(kind assetKind) *classState {
	if kind == ownedAsset {
		return &s.owned
	}
	return &s.rented
}

func (s *simulationState) applyContribution(amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	s.cash = s.cash.Add(amount)
	s.investedCapital = s.investedCapital.Add(amount)
}
