package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/modproj/projector/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MODULE PORTFOLIO PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "===================================")
	if results.ConfigurationName != "" {
		fmt.Fprintf(&buf, "Portfolio: %s\n", results.ConfigurationName)
	}
	fmt.Fprintln(&buf)
	summaries := make([]domain.ProjectionSummary, 0, len(results.Results))
	for _, r := range results.Results {
		summaries = append(summaries, r.Summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Strategy < summaries[j].Strategy })
	for _, s := range summaries {
		fmt.Fprintf(&buf, "%s: NetWorth=%s Invested=%s ROI=%s Modules=%d/%d\n",
			s.Strategy,
			FormatCurrency(s.FinalNetWorth),
			FormatCurrency(s.FinalInvestedCapital),
			FormatPercentage(s.ROIPercent),
			s.FinalOwnedModules,
			s.FinalRentedModules,
		)
		fmt.Fprintf(&buf, "  BreakEven=%s Withdrawn=%s Fund=%s\n", FormatMonth(s.BreakEvenMonth), FormatCurrency(s.TotalWithdrawals), FormatCurrency(s.TotalFund))
	}
	rec := AnalyzeStrategies(results)
	if rec.Strategy != "" {
		fmt.Fprintln(&buf)
		if rec.RunnerUp != "" {
			fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s vs %s)\n", rec.Strategy, FormatCurrency(rec.NetWorthChange), FormatPercentage(rec.PercentageChange), rec.RunnerUp)
		} else {
			fmt.Fprintf(&buf, "Recommended: %s\n", rec.Strategy)
		}
	}
	return buf.Bytes(), nil
}
