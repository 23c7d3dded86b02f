package calculation

import (
	dec "github.com/modproj/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// escalate applies the annual correction to every per-unit rate and recurring stream.
// The land loan keeps the terms fixed at origination.
func (s *simulationState) escalate(correctionPct decimal.Decimal) {
	if correctionPct.IsZero() {
		return
	}
	f := dec.GrowthFactor(correctionPct)
	for _, c := range []*classState{&s.rented, &s.owned} {
		c.unitCost = c.unitCost.Mul(f)
		c.revenue = c.revenue.Mul(f)
		c.maintenance = c.maintenance.Mul(f)
	}
	s.aggregateRent = s.aggregateRent.Mul(f)
	s.newLandInstallments = s.newLandInstallments.Mul(f)
	s.rentPerNewModule = s.rentPerNewModule.Mul(f)
	s.landInstallmentPerNewModule = s.landInstallmentPerNewModule.Mul(f)
}
