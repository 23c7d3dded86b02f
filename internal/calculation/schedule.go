package calculation

import (
	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// eventSchedule indexes the scheduled cash events by month so the monthly step
// does constant work regardless of how many rules are configured.
type eventSchedule struct {
	contributions map[int]decimal.Decimal
	withdrawalPct []decimal.Decimal // index is the month, 1-based
	fundPct       []decimal.Decimal
}

func newEventSchedule(p domain.Parameters, months int) *eventSchedule {
	s := &eventSchedule{
		contributions: make(map[int]decimal.Decimal, len(p.Contributions)),
		withdrawalPct: activePercentByMonth(p.WithdrawalRules, months),
		fundPct:       activePercentByMonth(p.ReserveFundRules, months),
	}
	for _, c := range p.Contributions {
		if c.Month < 1 || c.Month > months {
			continue
		}
		s.contributions[c.Month] = s.contributions[c.Month].Add(c.Amount)
	}
	return s
}

// activePercentByMonth sums, for every month, the percentages of all rules already started
func activePercentByMonth(rules []domain.PercentageRule, months int) []decimal.Decimal {
	starting := make([]decimal.Decimal, months+2)
	for _, r := range rules {
		start := r.StartMonth
		if start < 1 {
			start = 1
		}
		if start > months {
			continue
		}
		starting[start] = starting[start].Add(r.Percent)
	}

	out := make([]decimal.Decimal, months+1)
	running := decimal.Zero
	for m := 1; m <= months; m++ {
		running = running.Add(starting[m])
		out[m] = running
	}
	return out
}

func (s *eventSchedule) contribution(month int) decimal.Decimal {
	return s.contributions[month]
}

func (s *eventSchedule) withdrawalPercent(month int) decimal.Decimal {
	return percentAt(s.withdrawalPct, month)
}

func (s *eventSchedule) fundPercent(month int) decimal.Decimal {
	return percentAt(s.fundPct, month)
}

func percentAt(byMonth []decimal.Decimal, month int) decimal.Decimal {
	if month < 1 || month >= len(byMonth) {
		return decimal.Zero
	}
	return byMonth[month]
}
