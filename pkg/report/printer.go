package report

import (
	"fmt"
	"io"

	"github.com/voidshard/ledger/pkg/domain"
)

// NoVendorMatches is printed when a vendor search finds nothing.
const NoVendorMatches = "No transactions found for that vendor."

// Printer renders reports as plain text.
type Printer struct {
	out       io.Writer
	showTotal bool
}

func NewPrinter(out io.Writer, showTotal bool) *Printer {
	return &Printer{out: out, showTotal: showTotal}
}

// Print writes the heading for the report then one line per transaction.
func (p *Printer) Print(k Kind, query string, txns []*domain.Transaction) {
	if k == KindVendor {
		fmt.Fprintf(p.out, "\n--- %s: %s ---\n", k.Title(), query)
	} else {
		fmt.Fprintf(p.out, "\n--- %s ---\n", k.Title())
	}

	for _, t := range txns {
		fmt.Fprintln(p.out, FormatLine(t))
	}

	if len(txns) == 0 {
		if k == KindVendor {
			fmt.Fprintln(p.out, NoVendorMatches)
		}
		return
	}

	if p.showTotal {
		fmt.Fprintf(p.out, "Total: %s (%d transactions)\n", Total(txns).StringFixed(2), len(txns))
	}
}

// FormatLine is how a single transaction is displayed.
func FormatLine(t *domain.Transaction) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s", t.Date, t.Time, t.Description, t.Vendor, t.Amount.StringFixed(2))
}
