package cashlog

import (
	"fmt"
	"iter"
	"sort"
)

// SortKey selects the order of the ledger sequence.
type SortKey int

const (
	// ByDate orders records by ascending date. The sort is stable, so records
	// on the same day keep their insertion order.
	ByDate SortKey = iota
	// ByAmount orders records by descending amount.
	ByAmount
	// ByCategory orders records by ascending category, byte order.
	ByCategory
)

func (k SortKey) String() string {
	switch k {
	case ByDate:
		return "date"
	case ByAmount:
		return "amount"
	case ByCategory:
		return "category"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey. An unrecognized key is an
// explicit error, never a silent no-op.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "date":
		return ByDate, nil
	case "amount":
		return ByAmount, nil
	case "category":
		return ByCategory, nil
	default:
		return 0, fmt.Errorf("unknown sort key: %q (want date, amount or category)", s)
	}
}

// Ledger holds the ordered sequence of transactions for one user.
//
// The sequence is the single source of truth: every aggregate is computed
// fresh from it, nothing is cached.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Add appends transactions to the end of the sequence. It always succeeds.
func (l *Ledger) Add(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in its
// current order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Filter returns a new ledger holding only the transactions accepted by the
// predicate, in their current order. The records are shared values, not
// references: the original ledger is left untouched.
func (l *Ledger) Filter(accept func(Transaction) bool) *Ledger {
	out := NewLedger()
	for _, tx := range l.transactions {
		if accept(tx) {
			out.Add(tx)
		}
	}
	return out
}

// TotalIncome returns the sum of all Income amounts, zero for an empty set.
func (l *Ledger) TotalIncome() Money { return l.total(Income) }

// TotalExpenses returns the sum of all Expense amounts, zero for an empty set.
func (l *Ledger) TotalExpenses() Money { return l.total(Expense) }

func (l *Ledger) total(kind Kind) Money {
	var sum Money
	for _, tx := range l.transactions {
		if tx.Kind == kind {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// NetSavings returns TotalIncome minus TotalExpenses, exactly.
func (l *Ledger) NetSavings() Money {
	return l.TotalIncome().Sub(l.TotalExpenses())
}

// SpendingByCategory groups Expense records by category and sums their
// amounts. The iterator yields categories in first-encountered order, so the
// breakdown is deterministic for a given sequence.
func (l *Ledger) SpendingByCategory() iter.Seq2[string, Money] {
	totals := make(map[string]Money)
	var order []string
	for _, tx := range l.transactions {
		if tx.Kind != Expense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return func(yield func(string, Money) bool) {
		for _, category := range order {
			if !yield(category, totals[category]) {
				return
			}
		}
	}
}

// LargestCategory returns the category with the maximum summed expense.
// Ties are broken in favor of the first-encountered category. ok is false
// when the ledger holds no expenses.
func (l *Ledger) LargestCategory() (category string, total Money, ok bool) {
	for c, t := range l.SpendingByCategory() {
		if !ok || t.GreaterThan(total) {
			category, total, ok = c, t, true
		}
	}
	return category, total, ok
}

// Sort reorders the stored sequence in place by the given key.
func (l *Ledger) Sort(key SortKey) {
	switch key {
	case ByDate:
		sort.SliceStable(l.transactions, func(i, j int) bool {
			return l.transactions[i].Date.Before(l.transactions[j].Date)
		})
	case ByAmount:
		sort.SliceStable(l.transactions, func(i, j int) bool {
			return l.transactions[i].Amount.GreaterThan(l.transactions[j].Amount)
		})
	case ByCategory:
		sort.SliceStable(l.transactions, func(i, j int) bool {
			return l.transactions[i].Category < l.transactions[j].Category
		})
	}
}
