package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/ledger/pkg/domain"
)

func TestPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, true)

	p.Print(KindPayments, "", []*domain.Transaction{
		tx("2024-01-01", "Acme", "-5.5"),
		tx("2024-01-02", "Shop", "-1"),
	})

	assert.Equal(t, ""+
		"\n--- Payments ---\n"+
		"2024-01-01 | 12:00:00 | desc 2024-01-01 | Acme | -5.50\n"+
		"2024-01-02 | 12:00:00 | desc 2024-01-02 | Shop | -1.00\n"+
		"Total: -6.50 (2 transactions)\n",
		buf.String(),
	)
}

func TestPrintEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinter(buf, true).Print(KindMonthToDate, "", nil)

	assert.Equal(t, "\n--- Month To Date ---\n", buf.String())
}

func TestPrintVendorNoMatches(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinter(buf, false).Print(KindVendor, "nobody", nil)

	assert.Equal(t, "\n--- Transactions for Vendor: nobody ---\n"+NoVendorMatches+"\n", buf.String())
}

func TestPrintWithoutTotal(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinter(buf, false).Print(KindAll, "", []*domain.Transaction{tx("2024-01-01", "Acme", "3")})

	assert.NotContains(t, buf.String(), "Total")
}
