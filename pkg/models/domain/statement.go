package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names as they appear in bank statement exports.
const (
	ColDate        = "Дата операции"
	ColAmount      = "Сумма операции"
	ColCategory    = "Категория"
	ColDescription = "Описание"
	ColCard        = "Номер карты"
)

// Record is a single statement row, field name to raw value.
// Values are kept verbatim as read from the export.
type Record map[string]string

// Table is an ordered sequence of records in file order. The column
// list is the schema of the source file; rows may still carry empty
// values for any column.
type Table struct {
	Columns []string
	Rows    []Record
}

// HasColumns reports whether every given column is part of the schema.
func (t Table) HasColumns(cols ...string) bool {
	for _, want := range cols {
		found := false
		for _, c := range t.Columns {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Transaction is a statement row with normalized date and amount.
// Negative amounts are expenses.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
	Card        string
}

// Window is an inclusive [Start, End] timestamp range.
type Window struct {
	Start time.Time
	End   time.Time
}

// TrailingWindow returns the window extending the given number of days
// backward from end.
func TrailingWindow(end time.Time, days int) Window {
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// MonthToDate returns the window from the first instant of ref's
// calendar month through ref itself.
func MonthToDate(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: ref}
}

// Contains reports whether ts falls inside the window, bounds included.
func (w Window) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && !ts.After(w.End)
}
