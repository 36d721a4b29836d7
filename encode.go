package cashlog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cashlog/date"
)

// Delimiter separates the fields of a persisted record. Descriptions and
// categories containing it cannot round-trip; this is a known limitation of
// the plain-delimited format, kept for compatibility with the on-disk
// contract rather than silently "fixed" with escaping.
const Delimiter = "|"

// numFields is the fixed field count of a record line:
// description|amount|kind|category|date
const numFields = 5

// FormatError reports a line whose structure does not match the record format.
type FormatError struct {
	Line   int // 1-based line number in the input
	Fields int // number of fields found
}

func (e FormatError) Error() string {
	return fmt.Sprintf("line %d: malformed record, got %d fields, want %d", e.Line, e.Fields, numFields)
}

// ParseError reports a line whose structure is correct but whose amount, kind
// or date field cannot be parsed.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Field string // name of the offending field
	Err   error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s: %v", e.Line, e.Field, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// EncodeTransaction writes a single record line to w, fields joined by the
// delimiter in fixed order, followed by a newline.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	line := strings.Join([]string{
		tx.Description,
		tx.Amount.String(),
		tx.Kind.String(),
		tx.Category,
		tx.Date.String(),
	}, Delimiter)
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes every transaction of the ledger to w, one record per
// line, in the ledger's current order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads record lines from r and returns the ledger they form,
// preserving file order.
//
// The whole decode aborts on the first malformed line: a FormatError when the
// field count is off, a ParseError when an amount, kind or date field does
// not parse. The caller never sees a partially populated ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue // Skip empty lines
		}

		fields := strings.Split(text, Delimiter)
		if len(fields) != numFields {
			return nil, FormatError{Line: line, Fields: len(fields)}
		}

		amount, err := ParseAmount(fields[1])
		if err != nil {
			return nil, ParseError{Line: line, Field: "amount", Err: err}
		}
		kind, err := ParseKind(fields[2])
		if err != nil {
			return nil, ParseError{Line: line, Field: "kind", Err: err}
		}
		day, err := date.Parse(fields[4])
		if err != nil {
			return nil, ParseError{Line: line, Field: "date", Err: err}
		}

		ledger.Add(Transaction{
			Description: fields[0],
			Amount:      amount,
			Kind:        kind,
			Category:    fields[3],
			Date:        day,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}
