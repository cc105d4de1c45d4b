package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/voidshard/ledger/pkg/domain"
)

type Kind int

const (
	KindAll Kind = iota
	KindDeposits
	KindPayments
	KindMonthToDate
	KindPreviousMonth
	KindYearToDate
	KindPreviousYear
	KindVendor
)

// Kinds lists every report in menu order.
var Kinds = []Kind{
	KindAll,
	KindDeposits,
	KindPayments,
	KindMonthToDate,
	KindPreviousMonth,
	KindYearToDate,
	KindPreviousYear,
	KindVendor,
}

func (k Kind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindDeposits:
		return "deposits"
	case KindPayments:
		return "payments"
	case KindMonthToDate:
		return "month-to-date"
	case KindPreviousMonth:
		return "previous-month"
	case KindYearToDate:
		return "year-to-date"
	case KindPreviousYear:
		return "previous-year"
	case KindVendor:
		return "vendor"
	default:
		panic(fmt.Sprintf("unknown report kind %d", k))
	}
}

// Title is the heading printed above a report.
func (k Kind) Title() string {
	switch k {
	case KindAll:
		return "All Transactions"
	case KindDeposits:
		return "Deposits"
	case KindPayments:
		return "Payments"
	case KindMonthToDate:
		return "Month To Date"
	case KindPreviousMonth:
		return "Previous Month"
	case KindYearToDate:
		return "Year To Date"
	case KindPreviousYear:
		return "Previous Year"
	case KindVendor:
		return "Transactions for Vendor"
	default:
		panic(fmt.Sprintf("unknown report kind %d", k))
	}
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return KindAll, fmt.Errorf("unknown report %q", s)
}

// Run applies the report of the given kind. query is only used by vendor
// search.
func Run(k Kind, txns []*domain.Transaction, now time.Time, query string) []*domain.Transaction {
	switch k {
	case KindDeposits:
		return Deposits(txns)
	case KindPayments:
		return Payments(txns)
	case KindMonthToDate:
		return MonthToDate(txns, now)
	case KindPreviousMonth:
		return PreviousMonth(txns, now)
	case KindYearToDate:
		return YearToDate(txns, now)
	case KindPreviousYear:
		return PreviousYear(txns, now)
	case KindVendor:
		return Vendor(txns, query)
	default:
		return All(txns)
	}
}
