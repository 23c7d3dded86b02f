package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/modproj/projector/internal/domain"
)

// CSVDetailedExporter provides the raw monthly projection detail per strategy/month.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

var detailedHeader = []string{
	"Strategy", "Month", "Year", "Date",
	"ActiveModules", "OwnedModules", "RentedModules",
	"Revenue", "Maintenance", "Rent", "NewLandInstallments", "OperatingProfit",
	"LoanInterest", "LoanAmortization", "LoanInstallment", "LoanBalance", "TotalMonthlyCost",
	"Contribution", "Fund", "Withdrawal",
	"Cash", "InvestedCapital", "CumulativeFund", "CumulativeWithdrawals", "ModulesPurchased",
	"NetWorth", "LandEquity", "LandMarketValue", "LandPatrimonialValue",
	"CumulativeInterest", "CumulativeAmortization", "CumulativeRent", "CumulativeNewLandInstallments", "TotalOutlay",
	"BrokenEven",
}

func (c CSVDetailedExporter) Format(results *domain.StrategyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	runs := append([]domain.ProjectionResult(nil), results.Results...)
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Strategy < runs[j].Strategy })
	for _, run := range runs {
		for i := range run.Rows {
			if err := w.Write(detailedRecord(run.Strategy, &run.Rows[i])); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func detailedRecord(strategy domain.Strategy, r *domain.MonthlyRow) []string {
	date := ""
	if !r.Date.IsZero() {
		date = r.Date.Format("2006-01")
	}
	return []string{
		string(strategy), intToString(r.Month), intToString(r.Year), date,
		intToString(r.ActiveModules), intToString(r.OwnedModules), intToString(r.RentedModules),
		r.Revenue.StringFixed(2), r.Maintenance.StringFixed(2), r.Rent.StringFixed(2), r.NewLandInstallments.StringFixed(2), r.OperatingProfit.StringFixed(2),
		r.LoanInterest.StringFixed(2), r.LoanAmortization.StringFixed(2), r.LoanInstallment.StringFixed(2), r.LoanBalance.StringFixed(2), r.TotalMonthlyCost.StringFixed(2),
		r.Contribution.StringFixed(2), r.Fund.StringFixed(2), r.Withdrawal.StringFixed(2),
		r.Cash.StringFixed(2), r.InvestedCapital.StringFixed(2), r.CumulativeFund.StringFixed(2), r.CumulativeWithdrawals.StringFixed(2), intToString(r.ModulesPurchased),
		r.NetWorth.StringFixed(2), r.LandEquity.StringFixed(2), r.LandMarketValue.StringFixed(2), r.LandPatrimonialValue.StringFixed(2),
		r.CumulativeInterest.StringFixed(2), r.CumulativeAmortization.StringFixed(2), r.CumulativeRent.StringFixed(2), r.CumulativeNewLandInstallments.StringFixed(2), r.TotalOutlay.StringFixed(2),
		boolToString(r.HasBrokenEven()),
	}
}
