package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/modproj/projector/internal/calculation"
	"github.com/modproj/projector/internal/config"
)

// Prints net worth against invested capital month by month for every strategy, to
// inspect where each one crosses its break-even point.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunStrategies(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Results) == 0 || len(res.Results[0].Rows) == 0 {
		fmt.Println("no projection data")
		return
	}

	header := "Month,Year"
	for _, r := range res.Results {
		header += fmt.Sprintf(",%[1]s_NetWorth,%[1]s_Invested,%[1]s_Gap,%[1]s_BrokenEven", r.Strategy)
	}
	fmt.Println(header)

	for idx := range res.Results[0].Rows {
		first := res.Results[0].Rows[idx]
		row := fmt.Sprintf("%d,%d", first.Month, first.Year)
		for _, r := range res.Results {
			m := r.Rows[idx]
			row += fmt.Sprintf(",%s,%s,%s,%t", m.NetWorth.StringFixed(0), m.InvestedCapital.StringFixed(0), m.NetWorth.Sub(m.InvestedCapital).StringFixed(0), m.HasBrokenEven())
		}
		fmt.Println(row)
	}

	for _, r := range res.Results {
		fmt.Fprintf(os.Stderr, "%s: break-even month %d\n", r.Strategy, r.Summary.BreakEvenMonth)
	}
}
