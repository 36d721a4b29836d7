// Command csl is a personal income and expense ledger kept in a single text file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashlog/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion must run before flag parsing: when invoked by the
	// shell, Complete prints candidates and exits.
	completion().Complete("csl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	ledgerFlags := map[string]complete.Predictor{
		"ledger-file": predict.Files("*.txt"),
		"currency":    predict.Set{"EUR", "USD", "GBP", "CHF"},
	}
	return &complete.Command{
		Flags: ledgerFlags,
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"a": predict.Nothing,
				"k": predict.Set{"income", "expense"},
				"c": predict.Nothing,
			}},
			"import": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.json"),
			}},
			"sort": {Flags: map[string]complete.Predictor{
				"by": predict.Set{"date", "amount", "category"},
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"p": predict.Set{"day", "week", "month", "quarter", "year"},
				"d": predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
				"d": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "format", "sorting", "import"}},
		},
	}
}
