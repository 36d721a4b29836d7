package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cashlog"
)

// Transactions renders every record of the ledger as a markdown table, in the
// ledger's current order.
func Transactions(ledger *cashlog.Ledger, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transactions\n\n")
	if ledger.Len() == 0 {
		fmt.Fprintln(&b, "The ledger is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Kind | Category | Amount | Description |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|")
	for _, tx := range ledger.Transactions() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Kind,
			tx.Category,
			tx.Amount.Display(currency),
			tx.Description,
		)
	}
	return b.String()
}
