package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/modproj/projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per strategy).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.StrategyComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Strategy", "Months", "FinalNetWorth", "FinalInvestedCapital", "FinalCash", "OwnedModules", "RentedModules", "ModulesPurchased", "TotalWithdrawals", "TotalFund", "TotalOutlay", "ROIPercent", "BreakEvenMonth", "LoanPayoffMonth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	summaries := make([]domain.ProjectionSummary, 0, len(results.Results))
	for _, r := range results.Results {
		summaries = append(summaries, r.Summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Strategy < summaries[j].Strategy })
	for _, s := range summaries {
		row := []string{
			string(s.Strategy),
			intToString(s.Months),
			s.FinalNetWorth.StringFixed(2),
			s.FinalInvestedCapital.StringFixed(2),
			s.FinalCash.StringFixed(2),
			intToString(s.FinalOwnedModules),
			intToString(s.FinalRentedModules),
			intToString(s.ModulesPurchased),
			s.TotalWithdrawals.StringFixed(2),
			s.TotalFund.StringFixed(2),
			s.TotalOutlay.StringFixed(2),
			s.ROIPercent.StringFixed(2),
			intToString(s.BreakEvenMonth),
			intToString(s.LoanPayoffMonth),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
