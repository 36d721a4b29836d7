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

type txCmd struct {
	start string
	end   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `csl tx [-s <start_date>] [-d <end_date>]

  Lists transactions from the ledger in their current order, optionally
  restricted to a date range.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date for a custom range.")
	f.StringVar(&c.end, "d", "", "The end date for the range.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if c.start != "" || c.end != "" {
		from, to := date.Date{}, date.Today()
		if c.start != "" {
			if from, err = date.Parse(c.start); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.end != "" {
			if to, err = date.Parse(c.end); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		r := date.Range{From: from, To: to}
		ledger = ledger.Filter(func(tx cashlog.Transaction) bool { return r.Contains(tx.Date) })
	}

	printMarkdown(renderer.Transactions(ledger, *displayCurrency))
	return subcommands.ExitSuccess
}
