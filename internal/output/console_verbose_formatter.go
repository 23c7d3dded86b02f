package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/modproj/projector/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report with a year-end table per strategy.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintln(&buf, "DETAILED MODULE PORTFOLIO PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	if results.ConfigurationName != "" {
		fmt.Fprintf(&buf, "Portfolio: %s\n", results.ConfigurationName)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i := range results.Results {
		writeStrategySection(&buf, i+1, &results.Results[i])
	}

	writeComparison(&buf, results)
	return buf.Bytes(), nil
}

func writeStrategySection(w io.Writer, n int, run *domain.ProjectionResult) {
	s := run.Summary
	fmt.Fprintf(w, "STRATEGY %d: %s\n", n, strings.ToUpper(string(run.Strategy)))
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "  Final Net Worth:        %s\n", FormatGroupedCurrency(s.FinalNetWorth))
	fmt.Fprintf(w, "  Invested Capital:       %s\n", FormatGroupedCurrency(s.FinalInvestedCapital))
	fmt.Fprintf(w, "  Return on Investment:   %s\n", FormatPercentage(s.ROIPercent))
	fmt.Fprintf(w, "  Final Cash:             %s\n", FormatGroupedCurrency(s.FinalCash))
	fmt.Fprintf(w, "  Modules (owned/rented): %d/%d, %d purchased\n", s.FinalOwnedModules, s.FinalRentedModules, s.ModulesPurchased)
	fmt.Fprintf(w, "  Total Withdrawals:      %s\n", FormatGroupedCurrency(s.TotalWithdrawals))
	fmt.Fprintf(w, "  Total Reserve Fund:     %s\n", FormatGroupedCurrency(s.TotalFund))
	fmt.Fprintf(w, "  Total Outlay:           %s\n", FormatGroupedCurrency(s.TotalOutlay))
	fmt.Fprintf(w, "  Break-even:             %s\n", FormatMonth(s.BreakEvenMonth))
	if s.LoanPayoffMonth > 0 {
		fmt.Fprintf(w, "  Land Loan Paid Off:     %s\n", FormatMonth(s.LoanPayoffMonth))
	}
	fmt.Fprintln(w)

	rows := run.YearEndRows()
	if len(rows) == 0 {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "%-5s %-8s %16s %14s %16s %16s %16s\n", "Year", "Modules", "Op. Profit", "Withdrawal", "Cash", "Loan Balance", "Net Worth")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	for _, r := range rows {
		fmt.Fprintf(w, "%-5d %-8s %16s %14s %16s %16s %16s\n",
			r.Year,
			fmt.Sprintf("%d/%d", r.OwnedModules, r.RentedModules),
			FormatGroupedCurrency(r.OperatingProfit),
			FormatGroupedCurrency(r.Withdrawal),
			FormatGroupedCurrency(r.Cash),
			FormatGroupedCurrency(r.LoanBalance),
			FormatGroupedCurrency(r.NetWorth),
		)
	}
	fmt.Fprintln(w)
}

func writeComparison(w io.Writer, results *domain.StrategyComparison) {
	if len(results.Results) < 2 {
		return
	}
	fmt.Fprintln(w, "STRATEGY COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Highest final net worth: %s\n", results.BestNetWorthStrategy)
	if results.EarliestBreakEvenStrategy != "" {
		fmt.Fprintf(w, "Earliest break-even:     %s\n", results.EarliestBreakEvenStrategy)
	} else {
		fmt.Fprintln(w, "Earliest break-even:     none within horizon")
	}
	rec := AnalyzeStrategies(results)
	if rec.RunnerUp != "" {
		fmt.Fprintf(w, "Advantage over %s:  %s (%s)\n", rec.RunnerUp, FormatGroupedCurrency(rec.NetWorthChange), FormatPercentage(rec.PercentageChange))
	}
}
