package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestAllocateDistribution(t *testing.T) {
	tests := []struct {
		name           string
		profit         float64
		cash           float64
		withdrawalPct  float64
		fundPct        float64
		ceiling        float64
		wantWithdrawal float64
		wantFund       float64
	}{
		{"no profit", 0, 10000, 50, 10, 0, 0, 0},
		{"loss", -500, 10000, 50, 10, 0, 0, 0},
		{"plain split", 2000, 10000, 30, 10, 0, 600, 200},
		{"no rules", 2000, 10000, 0, 0, 0, 0, 0},
		{"ceiling clamps withdrawal only", 2000, 10000, 50, 40, 300, 300, 800},
		{"ceiling above potential", 2000, 10000, 10, 0, 5000, 200, 0},
		{"zero ceiling means none", 2000, 10000, 100, 0, 0, 2000, 0},
		{"shortfall scales both", 2000, 500, 60, 20, 0, 375, 125},
		{"shortfall after ceiling", 2000, 400, 50, 50, 600, 150, 250},
		{"shortfall withdrawal only", 2000, 700, 100, 0, 0, 700, 0},
		{"cash exactly covers", 2000, 800, 30, 10, 0, 600, 200},
		{"zero cash", 2000, 0, 30, 10, 0, 0, 0},
		{"negative cash", 2000, -100, 30, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateDistribution(d(tt.profit), d(tt.cash), d(tt.withdrawalPct), d(tt.fundPct), d(tt.ceiling))
			assert.True(t, got.Withdrawal.Sub(d(tt.wantWithdrawal)).Abs().LessThan(d(0.000001)),
				"withdrawal: want %v got %s", tt.wantWithdrawal, got.Withdrawal)
			assert.True(t, got.Fund.Sub(d(tt.wantFund)).Abs().LessThan(d(0.000001)),
				"fund: want %v got %s", tt.wantFund, got.Fund)
		})
	}
}

func TestAllocateDistribution_NeverExceedsCash(t *testing.T) {
	cashes := []float64{-1000, 0, 0.01, 1, 333.33, 1000, 1e6}
	pcts := []float64{0, 7, 33.3, 50, 100}
	ceilings := []float64{0, 1, 250}
	profit := d(1234.56)

	for _, c := range cashes {
		for _, w := range pcts {
			for _, f := range pcts {
				for _, ceil := range ceilings {
					got := AllocateDistribution(profit, d(c), d(w), d(f), d(ceil))
					limit := decimal.Max(d(c), decimal.Zero)
					assert.True(t, got.Total().LessThanOrEqual(limit),
						"cash=%v w=%v f=%v ceil=%v total=%s", c, w, f, ceil, got.Total())
					assert.False(t, got.Withdrawal.IsNegative())
					assert.False(t, got.Fund.IsNegative())
					if ceil > 0 {
						assert.True(t, got.Withdrawal.LessThanOrEqual(d(ceil)))
					}
				}
			}
		}
	}
}

func TestApplyDistribution(t *testing.T) {
	s := &simulationState{cash: d(1000)}
	s.applyDistribution(Distribution{Withdrawal: d(300), Fund: d(100)})
	s.applyDistribution(Distribution{Withdrawal: d(50), Fund: d(25)})

	assert.True(t, s.cash.Equal(d(525)))
	assert.True(t, s.cumulativeWithdrawals.Equal(d(350)))
	assert.True(t, s.cumulativeFund.Equal(d(125)))
}
