// Package report implements the aggregation pipeline over a statement
// table: category spend totals, month-to-date top transactions, the
// per-card summary and free-text search.
package report

import "errors"

// Validation errors carry the exact messages consumers display.
var (
	ErrNoData         = errors.New("Нет данных для анализа")
	ErrMissingColumns = errors.New("Необходимые колонки отсутствуют в данных")
	ErrSearchColumns  = errors.New("Отсутствуют необходимые колонки в данных")
)

// TopLimit is the number of rows a top-transaction report returns.
const TopLimit = 5

// CategoryWindowDays is the trailing window length of a category report.
const CategoryWindowDays = 90
