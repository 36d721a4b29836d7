// Package cmd implements the CLI application to manage a cash ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashlog"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&sortCmd{}, "transactions")

	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.txt", "Path to the ledger file containing transactions ('|'-delimited text)")
var displayCurrency = flag.String("currency", "EUR", "ISO currency code used to display amounts in reports")

// loadLedger loads the app ledger file. A missing file yields an empty ledger.
func loadLedger() (*cashlog.Ledger, error) {
	return cashlog.LoadLedger(*ledgerFile)
}

// saveLedger overwrites the app ledger file with the given ledger.
func saveLedger(ledger *cashlog.Ledger) error {
	return cashlog.SaveLedger(*ledgerFile, ledger)
}

// appendTransaction loads the ledger, appends the record, and writes the file
// back. Each invocation is one batch session: load, mutate, save.
func appendTransaction(tx cashlog.Transaction) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	ledger.Add(tx)
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
