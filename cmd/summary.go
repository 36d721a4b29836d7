package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashlog"
	"github.com/etnz/cashlog/date"
	"github.com/etnz/cashlog/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals, net savings and spending by category" }
func (*summaryCmd) Usage() string {
	return `csl summary [-p <period>] [-d <date>]

  Displays total income, total expenses, net savings, the per-category
  spending breakdown with a proportional bar chart, and the largest
  spending category. With -p, only the period containing <date> is
  summarized; by default the whole ledger is.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Restrict to a period (day, week, month, quarter, year) containing -d.")
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for -p. See the user manual for supported date formats.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if c.period != "" {
		on, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		period, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		r := date.NewRange(on, period)
		ledger = ledger.Filter(func(tx cashlog.Transaction) bool { return r.Contains(tx.Date) })
	}

	printMarkdown(renderer.Summary(ledger, *displayCurrency))
	return subcommands.ExitSuccess
}
