// Package normalize turns raw statement rows into comparable
// transactions. Parsing degrades row by row: a record whose date or
// amount cannot be read is logged and excluded, never fatal.
package normalize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

// Statement layouts. Dotted day-first is the stored format; ISO is the
// single fallback.
const (
	LayoutDotted     = "02.01.2006"
	LayoutDottedTime = "02.01.2006 15:04:05"
	LayoutISO        = "2006-01-02"
	LayoutISOTime    = "2006-01-02 15:04:05"
)

var dateLayouts = []string{LayoutDottedTime, LayoutDotted, LayoutISOTime, LayoutISO}

// ParseDate parses a statement date string, trying the primary dotted
// layout first and the ISO fallback second, each with and without a
// time component.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q matches no supported format", s)
}

// ParseTimestamp parses a reference timestamp in the strict
// "YYYY-MM-DD HH:MM:SS" form.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(LayoutISOTime, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q does not match format %q", s, LayoutISOTime)
	}
	return ts, nil
}

// ParseReference parses a report reference date, with or without a
// time component.
func ParseReference(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ts, err := time.Parse(LayoutISOTime, s); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(LayoutISO, s); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("reference date %q does not match %q", s, LayoutISOTime)
}

// ParseAmount parses a signed decimal amount. Statement exports use a
// comma decimal separator and may pad with spaces.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q: %w", s, err)
	}
	return d, nil
}

// Transactions converts a raw table into normalized transactions.
// Rows whose date or amount does not parse are excluded from the
// result with a diagnostic; the input table is left untouched.
func Transactions(ctx context.Context, table domain.Table) []domain.Transaction {
	logger := zerolog.Ctx(ctx)

	txns := make([]domain.Transaction, 0, len(table.Rows))
	for i, row := range table.Rows {
		ts, err := ParseDate(row[domain.ColDate])
		if err != nil {
			logger.Warn().Int("row", i).Err(err).Msg("dropping row with unparsable date")
			continue
		}
		amount, err := ParseAmount(row[domain.ColAmount])
		if err != nil {
			logger.Warn().Int("row", i).Err(err).Msg("dropping row with unparsable amount")
			continue
		}
		txns = append(txns, domain.Transaction{
			Date:        ts,
			Amount:      amount,
			Category:    row[domain.ColCategory],
			Description: row[domain.ColDescription],
			Card:        row[domain.ColCard],
		})
	}
	return txns
}
