package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of a category spend report: the category
// name and the summed amount over the report window, sign preserved.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TopTransaction is one entry of a month-to-date top-N report.
type TopTransaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
}

// CardSummary describes the primary card of a statement: the card that
// occurs most often, its total expenses and the cashback earned on them.
type CardSummary struct {
	LastDigits string
	TotalSpent decimal.Decimal
	Cashback   decimal.Decimal
}

// CurrencyRate is an exchange rate against the base currency.
type CurrencyRate struct {
	Currency string
	Rate     float64
}

// StockPrice is a closing price for one symbol on the requested day.
type StockPrice struct {
	Symbol string
	Price  float64
}
