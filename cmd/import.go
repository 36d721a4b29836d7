package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cashlog"
	"github.com/etnz/cashlog/date"
	"github.com/google/subcommands"
)

// importCmd imports transactions from a JSON export of another tracker.
// The location of each field in the export is given as a JSONPath expression,
// so most array-of-objects exports can be imported without conversion.
type importCmd struct {
	file        string
	description string
	amount      string
	kind        string
	category    string
	date        string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSON export" }
func (*importCmd) Usage() string {
	return `csl import -f <file> [-desc <path>] [-amount <path>] [-kind <path>] [-category <path>] [-date <path>]

  Reads a JSON export and appends its records to the ledger. Each flag is a
  JSONPath expression selecting one field across all records; the defaults
  match an export shaped like [{"description":..., "amount":..., "kind":...,
  "category":..., "date":...}, ...]. The import is atomic: a single record
  that fails to parse aborts the whole import.

Usage Examples:
$ csl import -f export.json
$ csl import -f export.json -desc '$[*].label' -amount '$[*].value'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON export file to import")
	f.StringVar(&c.description, "desc", "$[*].description", "JSONPath of the description field")
	f.StringVar(&c.amount, "amount", "$[*].amount", "JSONPath of the amount field")
	f.StringVar(&c.kind, "kind", "$[*].kind", "JSONPath of the kind field")
	f.StringVar(&c.category, "category", "$[*].category", "JSONPath of the category field")
	f.StringVar(&c.date, "date", "$[*].date", "JSONPath of the date field")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export file: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, err := importRecords(data, importPaths{
		Description: c.description,
		Amount:      c.amount,
		Kind:        c.kind,
		Category:    c.category,
		Date:        c.date,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	ledger.Add(txs...)
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions into %s\n", len(txs), *ledgerFile)
	return subcommands.ExitSuccess
}

// importPaths holds the JSONPath expression of each record field.
type importPaths struct {
	Description, Amount, Kind, Category, Date string
}

// importRecords extracts one column per field from the JSON export and zips
// them back into transactions. All columns must select the same number of
// values.
func importRecords(data []byte, paths importPaths) ([]cashlog.Transaction, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("invalid JSON export: %w", err)
	}

	descriptions, err := column(jobj, paths.Description)
	if err != nil {
		return nil, err
	}
	amounts, err := column(jobj, paths.Amount)
	if err != nil {
		return nil, err
	}
	kinds, err := column(jobj, paths.Kind)
	if err != nil {
		return nil, err
	}
	categories, err := column(jobj, paths.Category)
	if err != nil {
		return nil, err
	}
	dates, err := column(jobj, paths.Date)
	if err != nil {
		return nil, err
	}

	n := len(descriptions)
	if len(amounts) != n || len(kinds) != n || len(categories) != n || len(dates) != n {
		return nil, fmt.Errorf("field columns have mismatched lengths: %d descriptions, %d amounts, %d kinds, %d categories, %d dates",
			n, len(amounts), len(kinds), len(categories), len(dates))
	}

	txs := make([]cashlog.Transaction, 0, n)
	for i := 0; i < n; i++ {
		amount, err := cashlog.ParseAmount(text(amounts[i]))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		kind, err := cashlog.ParseKind(text(kinds[i]))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		day, err := date.Parse(text(dates[i]))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		txs = append(txs, cashlog.NewTransaction(text(descriptions[i]), amount, kind, text(categories[i]), day))
	}
	return txs, nil
}

// column evaluates a JSONPath expression and always returns a list, even when
// the expression selects a single value.
func column(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

// text renders a JSON scalar in its textual field form. json.Unmarshal into
// any yields float64 for numbers, which must not pick up an exponent on the
// way to ParseAmount, hence the 'f' format.
func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
