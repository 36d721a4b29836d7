package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cashlog"
	"github.com/etnz/cashlog/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	date     string
	amount   string
	kind     string
	category string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `csl add -a <amount> -k <kind> -c <category> [-d <date>] <description>

  Appends a transaction to the ledger file. The amount is a plain decimal
  (e.g. 42.50), the kind is Income or Expense (case-insensitive), and the
  date defaults to today.

Usage Examples:
$ csl add -a 1500 -k income -c Salary "July paycheck"
$ csl add -a 42.50 -k expense -c Food "groceries"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "Transaction amount, a plain decimal")
	f.StringVar(&c.kind, "k", "", "Transaction kind: Income or Expense")
	f.StringVar(&c.category, "c", "", "Category label used to group expenses")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.Join(f.Args(), " ")
	if description == "" || c.amount == "" || c.kind == "" || c.category == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	// Parse errors here are entry errors: report and let the user re-run,
	// the store is never mutated.
	amount, err := cashlog.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := cashlog.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := cashlog.NewTransaction(description, amount, kind, c.category, day)
	return appendTransaction(tx)
}
