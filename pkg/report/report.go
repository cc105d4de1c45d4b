// Package report selects views of a ledger: by sign, by calendar period
// relative to a reference date, or by vendor.
//
// Every filter preserves the order of its input.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voidshard/ledger/pkg/domain"
)

func filter(txns []*domain.Transaction, keep func(*domain.Transaction) bool) []*domain.Transaction {
	out := []*domain.Transaction{}
	for _, t := range txns {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// inMonth matches transactions dated in the given calendar month. Rows with
// an unparsable date never match.
func inMonth(year int, month time.Month) func(*domain.Transaction) bool {
	return func(t *domain.Transaction) bool {
		d, ok := t.ParsedDate()
		return ok && d.Year() == year && d.Month() == month
	}
}

func inYear(year int) func(*domain.Transaction) bool {
	return func(t *domain.Transaction) bool {
		d, ok := t.ParsedDate()
		return ok && d.Year() == year
	}
}

// All returns every transaction.
func All(txns []*domain.Transaction) []*domain.Transaction {
	return filter(txns, func(*domain.Transaction) bool { return true })
}

// Deposits returns transactions with a non-negative amount.
func Deposits(txns []*domain.Transaction) []*domain.Transaction {
	return filter(txns, (*domain.Transaction).IsDeposit)
}

// Payments returns transactions with a negative amount.
func Payments(txns []*domain.Transaction) []*domain.Transaction {
	return filter(txns, (*domain.Transaction).IsPayment)
}

// MonthToDate returns transactions in the same calendar month as now.
func MonthToDate(txns []*domain.Transaction, now time.Time) []*domain.Transaction {
	return filter(txns, inMonth(now.Year(), now.Month()))
}

// PreviousMonth returns transactions in the calendar month before now's.
func PreviousMonth(txns []*domain.Transaction, now time.Time) []*domain.Transaction {
	year, month := now.Year(), now.Month()-1
	if month < time.January {
		year, month = year-1, time.December
	}
	return filter(txns, inMonth(year, month))
}

// YearToDate returns transactions in now's year.
func YearToDate(txns []*domain.Transaction, now time.Time) []*domain.Transaction {
	return filter(txns, inYear(now.Year()))
}

// PreviousYear returns transactions in the year before now's.
func PreviousYear(txns []*domain.Transaction, now time.Time) []*domain.Transaction {
	return filter(txns, inYear(now.Year()-1))
}

// Vendor returns transactions whose vendor contains query, ignoring case.
func Vendor(txns []*domain.Transaction, query string) []*domain.Transaction {
	query = strings.ToLower(query)
	return filter(txns, func(t *domain.Transaction) bool {
		return strings.Contains(strings.ToLower(t.Vendor), query)
	})
}

// Total sums the amounts of the given transactions.
func Total(txns []*domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}
