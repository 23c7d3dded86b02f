package calculation

import (
	"github.com/modproj/projector/internal/domain"
	dec "github.com/modproj/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// LandLoan tracks the financing of the initial owned land.
// Later land purchased through reinvestment is not tracked here; it only adds a flat
// installment to the recurring cost stream.
type LandLoan struct {
	Balance             decimal.Decimal
	MonthlyAmortization decimal.Decimal
	MonthlyRate         decimal.Decimal
	InterestPaid        decimal.Decimal
	AmortizationPaid    decimal.Decimal
	Equity              decimal.Decimal
	DownPayment         decimal.Decimal
	Installments        int
	InstallmentsPaid    int
}

// LoanPayment is the debt service of a single month
type LoanPayment struct {
	Interest     decimal.Decimal
	Amortization decimal.Decimal
}

// Total returns interest plus amortization
func (p LoanPayment) Total() decimal.Decimal {
	return p.Interest.Add(p.Amortization)
}

// NewLandLoan originates the land loan. It returns nil when no land is financed.
func NewLandLoan(f domain.LandFinancing) *LandLoan {
	if !f.LandValue.IsPositive() {
		return nil
	}
	down := dec.PercentOf(f.LandValue, f.DownPaymentPercent)
	financed := f.LandValue.Sub(down)

	amortization := decimal.Zero
	if f.Installments > 0 {
		amortization = financed.Div(decimal.NewFromInt(int64(f.Installments)))
	}

	return &LandLoan{
		Balance:             financed,
		MonthlyAmortization: amortization,
		MonthlyRate:         dec.MonthlyRate(f.AnnualInterestRate),
		Equity:              down,
		DownPayment:         down,
		Installments:        f.Installments,
	}
}

// PaidOff reports whether the balance has reached zero. A nil loan is always paid off.
func (l *LandLoan) PaidOff() bool {
	return l == nil || !l.Balance.IsPositive()
}

// OutstandingBalance returns the balance, or zero for a nil loan
func (l *LandLoan) OutstandingBalance() decimal.Decimal {
	if l == nil {
		return decimal.Zero
	}
	return l.Balance
}

// Step charges one month of interest and amortization and returns the payment.
// Once the balance is zero the loan is inert and Step returns a zero payment.
func (l *LandLoan) Step() LoanPayment {
	if l.PaidOff() {
		return LoanPayment{Interest: decimal.Zero, Amortization: decimal.Zero}
	}

	interest := l.Balance.Mul(l.MonthlyRate)
	amortization := dec.Min(l.MonthlyAmortization, l.Balance)
	if l.Installments > 0 && l.InstallmentsPaid+1 >= l.Installments {
		// last installment settles whatever rounding left behind
		amortization = l.Balance
	}

	l.Balance = l.Balance.Sub(amortization)
	l.Equity = l.Equity.Add(amortization)
	l.InterestPaid = l.InterestPaid.Add(interest)
	l.AmortizationPaid = l.AmortizationPaid.Add(amortization)
	if amortization.IsPositive() {
		l.InstallmentsPaid++
	}

	return LoanPayment{Interest: interest, Amortization: amortization}
}
