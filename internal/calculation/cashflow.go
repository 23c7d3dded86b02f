package calculation

import "github.com/shopspring/decimal"

// OperatingCashFlow is the month's result from running the modules, before debt service
type OperatingCashFlow struct {
	Revenue             decimal.Decimal
	Maintenance         decimal.Decimal
	Rent                decimal.Decimal
	NewLandInstallments decimal.Decimal
}

// OccupancyCost returns rent plus the installments of land bought through reinvestment
func (o OperatingCashFlow) OccupancyCost() decimal.Decimal {
	return o.Rent.Add(o.NewLandInstallments)
}

// Profit returns revenue minus maintenance minus occupancy cost
func (o OperatingCashFlow) Profit() decimal.Decimal {
	return o.Revenue.Sub(o.Maintenance).Sub(o.OccupancyCost())
}

func (s *simulationState) operatingCashFlow() OperatingCashFlow {
	rented := decimal.NewFromInt(int64(s.rented.modules))
	owned := decimal.NewFromInt(int64(s.owned.modules))
	return OperatingCashFlow{
		Revenue:             rented.Mul(s.rented.revenue).Add(owned.Mul(s.owned.revenue)),
		Maintenance:         rented.Mul(s.rented.maintenance).Add(owned.Mul(s.owned.maintenance)),
		Rent:                s.aggregateRent,
		NewLandInstallments: s.newLandInstallments,
	}
}

// settleOperations credits the operating profit and debits the land loan payment.
// Cash may go negative here; nothing floors it.
func (s *simulationState) settleOperations(ocf OperatingCashFlow, payment LoanPayment) {
	s.cash = s.cash.Add(ocf.Profit()).Sub(payment.Total())
	s.cumulativeRent = s.cumulativeRent.Add(ocf.Rent)
	s.cumulativeNewLandInstallments = s.cumulativeNewLandInstallments.Add(ocf.NewLandInstallments)
}
