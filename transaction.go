package cashlog

import (
	"fmt"
	"strings"

	"github.com/etnz/cashlog/date"
)

// Kind tells whether a transaction is income or an expense.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind label, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown kind %q, want %q or %q", s, Income, Expense)
	}
}

// Transaction is a single income or expense record.
//
// A Transaction has no identity of its own: it is identified only by its
// position in the ledger, and is never edited once added.
type Transaction struct {
	Description string
	Amount      Money
	Kind        Kind
	Category    string
	Date        date.Date
}

// NewTransaction creates a transaction record.
func NewTransaction(description string, amount Money, kind Kind, category string, day date.Date) Transaction {
	return Transaction{
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		Date:        day,
	}
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Kind == o.Kind &&
		t.Category == o.Category &&
		t.Date == o.Date
}
