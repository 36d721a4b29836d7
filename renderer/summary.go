// Package renderer produces the markdown reports of the csl command-line tool.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cashlog"
)

// barUnit is the amount represented by one bar-chart marker character.
const barUnit = 10

// barMarker is the character repeated to draw a category bar.
const barMarker = "█"

// Bar renders the proportional bar for a category total: one marker per
// barUnit whole units, truncated down.
func Bar(total cashlog.Money) string {
	n := total.Units() / barUnit
	if n < 0 {
		n = 0
	}
	return strings.Repeat(barMarker, int(n))
}

// Summary renders the ledger overview: totals, net savings, the per-category
// spending breakdown with its bar chart, and the largest spending category.
// Amounts are displayed in the given ISO currency.
func Summary(ledger *cashlog.Ledger, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Summary\n\n")
	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Income | %s |\n", ledger.TotalIncome().Display(currency))
	fmt.Fprintf(&b, "| Total Expenses | %s |\n", ledger.TotalExpenses().Display(currency))
	fmt.Fprintf(&b, "| Net Savings | %s |\n", ledger.NetSavings().Display(currency))

	fmt.Fprintf(&b, "\n## Spending by Category\n\n")
	fmt.Fprintln(&b, "| Category | Total | |")
	fmt.Fprintln(&b, "|:---|---:|:---|")
	for category, total := range ledger.SpendingByCategory() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", category, total.Display(currency), Bar(total))
	}

	if category, total, ok := ledger.LargestCategory(); ok {
		fmt.Fprintf(&b, "\nLargest spending category: **%s** (%s)\n", category, total.Display(currency))
	}

	return b.String()
}
