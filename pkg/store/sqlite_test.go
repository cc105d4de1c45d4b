package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/ledger/pkg/domain"
)

func TestSQLiteWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "db", "ledger.db")
	s := NewSQLite(filename)

	txns := []*domain.Transaction{
		domain.NewDeposit(now, "salary", "Employer", decimal.NewFromInt(100)),
		domain.NewPayment(now, "rent", "Landlord", decimal.RequireFromString("60.5")),
	}

	require.NoError(t, s.Write(txns))
	// exporting twice replaces rather than duplicates
	require.NoError(t, s.Write(txns))

	db, err := sql.Open("sqlite", filename)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count))
	assert.Equal(t, 2, count)

	var vendor, amount string
	require.NoError(t, db.QueryRow("SELECT vendor, amount FROM transactions WHERE ordinal = 1").Scan(&vendor, &amount))
	assert.Equal(t, "Landlord", vendor)
	assert.Equal(t, "-60.5", amount)
}
