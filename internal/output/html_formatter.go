package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/modproj/projector/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a net worth chart per strategy.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatGroupedCurrency,
	"pct":   FormatPercentage,
	"month": FormatMonth,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the year-end net worth line of one strategy.
type chartSeries struct {
	Strategy domain.Strategy `json:"strategy"`
	Years    []int           `json:"years"`
	NetWorth []string        `json:"net_worth"`
}

func (h HTMLFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var buf bytes.Buffer

	series := make([]chartSeries, 0, len(results.Results))
	for i := range results.Results {
		run := &results.Results[i]
		s := chartSeries{Strategy: run.Strategy}
		for _, r := range run.YearEndRows() {
			s.Years = append(s.Years, r.Year)
			s.NetWorth = append(s.NetWorth, r.NetWorth.StringFixed(2))
		}
		series = append(series, s)
	}

	data := struct {
		*domain.StrategyComparison
		Recommendation Recommendation
		Assumptions    []string
		Series         []chartSeries
	}{results, AnalyzeStrategies(results), assumptionsFor(results), series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
