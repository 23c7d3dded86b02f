package calculation

import (
	"fmt"

	"github.com/modproj/projector/internal/domain"
	dec "github.com/modproj/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

type assetKind int

const (
	rentedAsset assetKind = iota
	ownedAsset
)

func (k assetKind) String() string {
	if k == ownedAsset {
		return "owned"
	}
	return "rented"
}

// Purchase describes the modules bought at a year boundary
type Purchase struct {
	Class   string
	Modules int
	Spent   decimal.Decimal
	// Capped is set when the portfolio limit cut the purchase short
	Capped bool
}

// targetClass resolves which asset class the strategy buys into this year
func targetClass(strategy domain.Strategy, totalModules int) (assetKind, error) {
	switch strategy {
	case domain.StrategyBuy:
		return ownedAsset, nil
	case domain.StrategyRent:
		return rentedAsset, nil
	case domain.StrategyAlternate:
		if totalModules%2 == 0 {
			return ownedAsset, nil
		}
		return rentedAsset, nil
	}
	return rentedAsset, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// purchase spends as much cash as buys whole modules of the given class, up to MaxModules
// in total. Leftover cash stays in cash.
func (s *simulationState) purchase(kind assetKind) Purchase {
	c := s.class(kind)
	n := dec.WholeUnits(s.cash, c.unitCost)
	capped := false
	if headroom := domain.MaxModules - s.totalModules(); n > headroom {
		n, capped = max(headroom, 0), true
	}
	if n == 0 {
		return Purchase{Class: kind.String(), Spent: decimal.Zero, Capped: capped}
	}

	count := decimal.NewFromInt(int64(n))
	spent := c.unitCost.Mul(count)
	s.cash = s.cash.Sub(spent)
	s.investedCapital = s.investedCapital.Add(spent)
	c.bookValue = c.bookValue.Add(spent)
	c.modules += n

	if kind == ownedAsset {
		s.newLandInstallments = s.newLandInstallments.Add(count.Mul(s.landInstallmentPerNewModule))
	} else {
		s.aggregateRent = s.aggregateRent.Add(count.Mul(s.rentPerNewModule))
	}
	return Purchase{Class: kind.String(), Modules: n, Spent: spent, Capped: capped}
}

// reinvest runs the yearly reinvestment for the chosen strategy
func (s *simulationState) reinvest(strategy domain.Strategy) (Purchase, error) {
	kind, err := targetClass(strategy, s.totalModules())
	if err != nil {
		return Purchase{}, err
	}
	return s.purchase(kind), nil
}
