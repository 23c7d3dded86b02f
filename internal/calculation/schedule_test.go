package calculation

import (
	"testing"

	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEventSchedule_Contributions(t *testing.T) {
	p := domain.Parameters{
		Contributions: []domain.ContributionEvent{
			{Month: 6, Amount: decimal.NewFromInt(50000)},
			{Month: 6, Amount: decimal.NewFromInt(2500)},
			{Month: 9, Amount: decimal.NewFromInt(1000)},
			{Month: 0, Amount: decimal.NewFromInt(999)},
			{Month: 40, Amount: decimal.NewFromInt(999)},
		},
	}
	s := newEventSchedule(p, 24)

	assert.True(t, s.contribution(6).Equal(decimal.NewFromInt(52500)))
	assert.True(t, s.contribution(9).Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.contribution(5).IsZero())
	assert.True(t, s.contribution(0).IsZero())
	assert.True(t, s.contribution(40).IsZero())
}

func TestEventSchedule_RulesAccumulateFromStartMonth(t *testing.T) {
	p := domain.Parameters{
		WithdrawalRules: []domain.PercentageRule{
			{StartMonth: 13, Percent: decimal.NewFromInt(10)},
			{StartMonth: 1, Percent: decimal.NewFromInt(5)},
			{StartMonth: 13, Percent: decimal.NewFromInt(2)},
			{StartMonth: 100, Percent: decimal.NewFromInt(50)},
		},
		ReserveFundRules: []domain.PercentageRule{
			{StartMonth: 0, Percent: decimal.NewFromInt(3)},
		},
	}
	s := newEventSchedule(p, 24)

	tests := []struct {
		month      int
		withdrawal int64
		fund       int64
	}{
		{1, 5, 3},
		{12, 5, 3},
		{13, 17, 3},
		{24, 17, 3},
		{25, 0, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.True(t, s.withdrawalPercent(tt.month).Equal(decimal.NewFromInt(tt.withdrawal)), "withdrawal month %d = %s", tt.month, s.withdrawalPercent(tt.month))
		assert.True(t, s.fundPercent(tt.month).Equal(decimal.NewFromInt(tt.fund)), "fund month %d = %s", tt.month, s.fundPercent(tt.month))
	}
}
