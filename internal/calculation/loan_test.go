package calculation

import (
	"testing"

	"github.com/modproj/projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardFinancing() domain.LandFinancing {
	return domain.LandFinancing{
		LandValue:          decimal.NewFromInt(100000),
		DownPaymentPercent: decimal.NewFromInt(20),
		Installments:       120,
		AnnualInterestRate: decimal.NewFromInt(8),
	}
}

func TestNewLandLoan_NoLand(t *testing.T) {
	loan := NewLandLoan(domain.LandFinancing{})
	assert.Nil(t, loan)
	assert.True(t, loan.PaidOff())
	assert.True(t, loan.OutstandingBalance().IsZero())

	payment := loan.Step()
	assert.True(t, payment.Total().IsZero())
}

func TestNewLandLoan_Origination(t *testing.T) {
	loan := NewLandLoan(standardFinancing())
	require.NotNil(t, loan)

	assert.True(t, loan.Balance.Equal(decimal.NewFromInt(80000)))
	assert.True(t, loan.Equity.Equal(decimal.NewFromInt(20000)))
	assert.True(t, loan.DownPayment.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, "666.67", loan.MonthlyAmortization.StringFixed(2))
	assert.Equal(t, "0.006667", loan.MonthlyRate.StringFixed(6))
}

func TestLandLoan_FirstMonthPayment(t *testing.T) {
	loan := NewLandLoan(standardFinancing())
	require.NotNil(t, loan)

	p := loan.Step()
	assert.Equal(t, "533.33", p.Interest.StringFixed(2))
	assert.Equal(t, "666.67", p.Amortization.StringFixed(2))
	assert.Equal(t, "1200.00", p.Total().StringFixed(2))
	assert.Equal(t, "79333.33", loan.Balance.StringFixed(2))
	assert.Equal(t, "20666.67", loan.Equity.StringFixed(2))
}

func TestLandLoan_PaysOffExactlyAtLastInstallment(t *testing.T) {
	tests := []struct {
		name         string
		installments int
	}{
		{"120 installments", 120},
		{"non terminating quotient", 7},
		{"single installment", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := standardFinancing()
			f.Installments = tt.installments
			loan := NewLandLoan(f)
			require.NotNil(t, loan)

			prev := loan.Balance
			for m := 1; m <= tt.installments; m++ {
				loan.Step()
				assert.True(t, loan.Balance.LessThanOrEqual(prev), "balance increased at month %d", m)
				assert.False(t, loan.Balance.IsNegative(), "negative balance at month %d", m)
				prev = loan.Balance
			}
			assert.True(t, loan.Balance.IsZero(), "balance after last installment: %s", loan.Balance)
			assert.True(t, loan.PaidOff())
			assert.True(t, loan.AmortizationPaid.Equal(decimal.NewFromInt(80000)))
			assert.True(t, loan.Equity.Equal(decimal.NewFromInt(100000)))

			after := loan.Step()
			assert.True(t, after.Interest.IsZero())
			assert.True(t, after.Amortization.IsZero())
			assert.True(t, loan.Balance.IsZero())
		})
	}
}

func TestLandLoan_ZeroInstallmentsNeverAmortizes(t *testing.T) {
	f := standardFinancing()
	f.Installments = 0
	loan := NewLandLoan(f)
	require.NotNil(t, loan)
	assert.True(t, loan.MonthlyAmortization.IsZero())

	for i := 0; i < 24; i++ {
		p := loan.Step()
		assert.True(t, p.Amortization.IsZero())
		assert.True(t, p.Interest.IsPositive())
	}
	assert.True(t, loan.Balance.Equal(decimal.NewFromInt(80000)))
	assert.Equal(t, 0, loan.InstallmentsPaid)
}

func TestLandLoan_FullDownPayment(t *testing.T) {
	f := standardFinancing()
	f.DownPaymentPercent = decimal.NewFromInt(100)
	loan := NewLandLoan(f)
	require.NotNil(t, loan)
	assert.True(t, loan.PaidOff())
	assert.True(t, loan.Step().Total().IsZero())
}
