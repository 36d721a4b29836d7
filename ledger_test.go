package cashlog

import (
	"testing"

	"github.com/etnz/cashlog/date"
)

// tx is a test helper to build a record tersely.
func tx(desc string, amount float64, kind Kind, category, day string) Transaction {
	return NewTransaction(desc, M(amount), kind, category, date.MustParse(day))
}

func sampleLedger() *Ledger {
	l := NewLedger()
	l.Add(
		tx("paycheck", 1500, Income, "Salary", "2024-07-01"),
		tx("groceries", 30, Expense, "Food", "2024-07-03"),
		tx("rent", 100, Expense, "Rent", "2024-07-05"),
		tx("restaurant", 12.50, Expense, "Food", "2024-07-06"),
		tx("freelance", 200, Income, "Side", "2024-07-10"),
	)
	return l
}

func TestLedger_Totals(t *testing.T) {
	l := sampleLedger()

	if got, want := l.TotalIncome(), M(1700); !got.Equal(want) {
		t.Errorf("TotalIncome() = %s, want %s", got, want)
	}
	if got, want := l.TotalExpenses(), M(142.50); !got.Equal(want) {
		t.Errorf("TotalExpenses() = %s, want %s", got, want)
	}
	if got, want := l.NetSavings(), M(1557.50); !got.Equal(want) {
		t.Errorf("NetSavings() = %s, want %s", got, want)
	}
}

func TestLedger_Totals_empty(t *testing.T) {
	l := NewLedger()
	if !l.TotalIncome().IsZero() || !l.TotalExpenses().IsZero() || !l.NetSavings().IsZero() {
		t.Errorf("empty ledger totals should all be zero, got income=%s expenses=%s net=%s",
			l.TotalIncome(), l.TotalExpenses(), l.NetSavings())
	}
}

// TestLedger_NetSavingsIdentity checks the exact identity
// TotalIncome - TotalExpenses == NetSavings on amounts that would not be
// exact in binary floating point.
func TestLedger_NetSavingsIdentity(t *testing.T) {
	l := NewLedger()
	l.Add(
		tx("a", 0.1, Income, "X", "2024-01-01"),
		tx("b", 0.2, Income, "X", "2024-01-02"),
		tx("c", 0.3, Expense, "Y", "2024-01-03"),
	)
	want := l.TotalIncome().Sub(l.TotalExpenses())
	if got := l.NetSavings(); !got.Equal(want) {
		t.Errorf("NetSavings() = %s, want %s", got, want)
	}
	if !l.NetSavings().IsZero() {
		t.Errorf("0.1+0.2-0.3 should be exactly zero, got %s", l.NetSavings())
	}
}

func TestLedger_SpendingByCategory(t *testing.T) {
	l := sampleLedger()

	var categories []string
	totals := make(map[string]Money)
	for c, m := range l.SpendingByCategory() {
		categories = append(categories, c)
		totals[c] = m
	}

	// First-encountered order: Food appears before Rent in the sequence.
	if len(categories) != 2 || categories[0] != "Food" || categories[1] != "Rent" {
		t.Fatalf("SpendingByCategory() order = %v, want [Food Rent]", categories)
	}
	if got, want := totals["Food"], M(42.50); !got.Equal(want) {
		t.Errorf("Food total = %s, want %s", got, want)
	}
	if got, want := totals["Rent"], M(100); !got.Equal(want) {
		t.Errorf("Rent total = %s, want %s", got, want)
	}

	// Sum over all category totals equals TotalExpenses.
	var sum Money
	for _, m := range totals {
		sum = sum.Add(m)
	}
	if !sum.Equal(l.TotalExpenses()) {
		t.Errorf("sum of category totals = %s, want %s", sum, l.TotalExpenses())
	}
}

func TestLedger_LargestCategory(t *testing.T) {
	l := NewLedger()
	l.Add(
		tx("groceries", 30, Expense, "Food", "2024-07-03"),
		tx("rent", 100, Expense, "Rent", "2024-07-05"),
	)
	category, total, ok := l.LargestCategory()
	if !ok {
		t.Fatal("LargestCategory() ok = false, want true")
	}
	if category != "Rent" || !total.Equal(M(100)) {
		t.Errorf("LargestCategory() = %s (%s), want Rent (100)", category, total)
	}
}

func TestLedger_LargestCategory_tieBreak(t *testing.T) {
	l := NewLedger()
	l.Add(
		tx("a", 50, Expense, "Travel", "2024-07-01"),
		tx("b", 50, Expense, "Food", "2024-07-02"),
	)
	// On a tie the first-encountered category wins.
	category, _, ok := l.LargestCategory()
	if !ok || category != "Travel" {
		t.Errorf("LargestCategory() = %q, want Travel (first encountered)", category)
	}
}

func TestLedger_LargestCategory_empty(t *testing.T) {
	l := NewLedger()
	l.Add(tx("paycheck", 1500, Income, "Salary", "2024-07-01"))
	if _, _, ok := l.LargestCategory(); ok {
		t.Error("LargestCategory() ok = true on a ledger with no expenses")
	}
}

func TestLedger_SortByDate(t *testing.T) {
	l := NewLedger()
	l.Add(
		tx("c", 3, Expense, "X", "2024-03-01"),
		tx("a", 1, Expense, "X", "2024-01-01"),
		tx("b1", 2, Expense, "X", "2024-02-01"),
		tx("b2", 4, Expense, "X", "2024-02-01"), // same day as b1
	)
	l.Sort(ByDate)

	var prev Transaction
	for i, cur := range l.Transactions() {
		if i > 0 && prev.Date.After(cur.Date) {
			t.Errorf("records not in date order at %d: %s > %s", i, prev.Date, cur.Date)
		}
		prev = cur
	}
	// Stable: b1 stays before b2.
	if l.transactions[1].Description != "b1" || l.transactions[2].Description != "b2" {
		t.Errorf("same-day records reordered: %v, %v", l.transactions[1].Description, l.transactions[2].Description)
	}
}

func TestLedger_SortByAmount(t *testing.T) {
	l := sampleLedger()
	l.Sort(ByAmount)

	var prev Transaction
	for i, cur := range l.Transactions() {
		if i > 0 && prev.Amount.LessThan(cur.Amount) {
			t.Errorf("amounts not non-increasing at %d: %s < %s", i, prev.Amount, cur.Amount)
		}
		prev = cur
	}
}

func TestLedger_SortByCategory(t *testing.T) {
	l := sampleLedger()
	l.Sort(ByCategory)

	var prev Transaction
	for i, cur := range l.Transactions() {
		if i > 0 && prev.Category > cur.Category {
			t.Errorf("categories not in order at %d: %q > %q", i, prev.Category, cur.Category)
		}
		prev = cur
	}
}

func TestParseSortKey(t *testing.T) {
	for _, s := range []string{"date", "amount", "category"} {
		key, err := ParseSortKey(s)
		if err != nil {
			t.Errorf("ParseSortKey(%q) returned error: %v", s, err)
		}
		if key.String() != s {
			t.Errorf("ParseSortKey(%q).String() = %q", s, key)
		}
	}
	if _, err := ParseSortKey("color"); err == nil {
		t.Error("ParseSortKey(\"color\") should have returned an error")
	}
}

func TestLedger_Filter(t *testing.T) {
	l := sampleLedger()
	food := l.Filter(func(tx Transaction) bool { return tx.Category == "Food" })
	if food.Len() != 2 {
		t.Errorf("Filter() kept %d records, want 2", food.Len())
	}
	if l.Len() != 5 {
		t.Errorf("Filter() mutated the original ledger, Len() = %d", l.Len())
	}
}
