package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/ledger/pkg/domain"
)

func TestJSONFileWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.json")
	jf := NewJSONFile(filename)

	err := jf.Write([]*domain.Transaction{
		domain.NewDeposit(now, "salary", "Employer", decimal.NewFromInt(100)),
		domain.NewPayment(now, "rent", "Landlord", decimal.NewFromInt(60)),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	got := []*domain.Transaction{}
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Landlord", got[1].Vendor)
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(-60)))
}

func TestJSONFileWriteEmpty(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, NewJSONFile(filename).Write(nil))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
