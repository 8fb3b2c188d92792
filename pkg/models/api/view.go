// Package api holds the JSON shapes served to consumers. Field names
// are part of the contract and must not change.
package api

// Error is the structured error payload returned instead of a result.
type Error struct {
	Message string `json:"error"`
}

// CardSummary is the per-card spend and cashback block of the view.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// TopTransaction is one row of the month-to-date top transaction list.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CurrencyRate is one user-configured exchange rate.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is the closing price of one user-configured symbol.
type StockPrice struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// Dashboard is the composed statement view.
type Dashboard struct {
	Greeting        string           `json:"greeting"`
	Cards           CardSummary      `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	CurrencyRates   []CurrencyRate   `json:"currency_rates"`
	StockPrices     []StockPrice     `json:"stock_prices"`
}

// CategoryTotal is one row of the category spend report. The report
// keeps the statement's own language for its keys.
type CategoryTotal struct {
	Category string  `json:"Категория"`
	Total    float64 `json:"Общая сумма"`
}

// Analysis is the full analysis result: free-text search matches, the
// category report and the dashboard view in one object.
type Analysis struct {
	SearchTransactions []map[string]string `json:"search_transactions"`
	SpendingByCategory []CategoryTotal     `json:"spending_by_category"`
	Dashboard          Dashboard           `json:"dashboard"`
}
