package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashlog"
	"github.com/google/subcommands"
)

type sortCmd struct {
	by string
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "reorder the ledger file by date, amount or category" }
func (*sortCmd) Usage() string {
	return `csl sort [-by <key>]

  Reorders the ledger file in place: by date (ascending, the default), by
  amount (descending), or by category (ascending). The sorted order becomes
  the new stored order.

Usage Examples:
$ csl sort
$ csl sort -by amount
`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "date", "Sort key: date, amount or category.")
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := cashlog.ParseSortKey(c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	ledger.Sort(key)

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sorted %d transactions by %s in %s\n", ledger.Len(), key, *ledgerFile)
	return subcommands.ExitSuccess
}
