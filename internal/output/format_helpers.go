package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

var groupPrinter = message.NewPrinter(language.English)

// FormatGroupedCurrency formats a decimal as USD with thousands separators, e.g. $1,234,567.89.
func FormatGroupedCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()
	return sign + groupPrinter.Sprintf("$%d.%02d", whole.IntPart(), cents)
}

// FormatMonth renders a month index as "Y3 M07" (year 3, month 7 of that year).
func FormatMonth(month int) string {
	if month <= 0 {
		return "never"
	}
	return groupPrinter.Sprintf("Y%d M%02d", (month-1)/12+1, (month-1)%12+1)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
