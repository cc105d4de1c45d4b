package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func TestNewPayment(t *testing.T) {
	cases := map[string]string{
		"positive": "50",
		"negative": "-50",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			tx := NewPayment(now, "groceries", "Acme", decimal.RequireFromString(in))

			assert.Equal(t, "2024-03-09", tx.Date)
			assert.Equal(t, "14:05:07", tx.Time)
			assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-50)))
			assert.True(t, tx.IsPayment())
			assert.Equal(t, "2024-03-09|14:05:07|groceries|Acme|-50", tx.Line())
		})
	}
}

func TestNewDeposit(t *testing.T) {
	tx := NewDeposit(now, "salary", "Employer", decimal.RequireFromString("1250.75"))

	assert.True(t, tx.IsDeposit())
	assert.Equal(t, "2024-03-09|14:05:07|salary|Employer|1250.75", tx.Line())
}

func TestZeroIsDeposit(t *testing.T) {
	tx := NewDeposit(now, "nothing", "nobody", decimal.Zero)

	assert.True(t, tx.IsDeposit())
	assert.False(t, tx.IsPayment())
}

func TestParseLine(t *testing.T) {
	tx, err := ParseLine("2023-12-31|23:59:59|coffee|Bean Co|-3.40")
	require.NoError(t, err)

	assert.Equal(t, "2023-12-31", tx.Date)
	assert.Equal(t, "23:59:59", tx.Time)
	assert.Equal(t, "coffee", tx.Description)
	assert.Equal(t, "Bean Co", tx.Vendor)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-3.4")))
}

func TestParseLineRoundTrip(t *testing.T) {
	tx := NewPayment(now, "rent", "Landlord Ltd", decimal.RequireFromString("900.10"))

	back, err := ParseLine(tx.Line())
	require.NoError(t, err)

	assert.Equal(t, tx.Line(), back.Line())
	assert.Equal(t, tx.ID(), back.ID())
}

func TestParseLineErrors(t *testing.T) {
	_, err := ParseLine("2023-12-31|23:59:59|coffee|-3.40")
	assert.ErrorIs(t, err, ErrFieldCount)

	_, err = ParseLine("2023-12-31|23:59:59|coffee|Bean Co|-3.40|extra")
	assert.ErrorIs(t, err, ErrFieldCount)

	_, err = ParseLine("2023-12-31|23:59:59|coffee|Bean Co|lots")
	assert.ErrorIs(t, err, ErrAmount)
}

func TestValidate(t *testing.T) {
	ok := NewDeposit(now, "gift", "Gran", decimal.NewFromInt(20))
	assert.NoError(t, ok.Validate())

	pipe := NewDeposit(now, "gift | card", "Gran", decimal.NewFromInt(20))
	assert.ErrorIs(t, pipe.Validate(), ErrInvalidField)

	newline := NewDeposit(now, "gift", "Gran\nma", decimal.NewFromInt(20))
	assert.ErrorIs(t, newline.Validate(), ErrInvalidField)
}

func TestParsedDate(t *testing.T) {
	tx := &Transaction{Date: "2024-02-29"}
	d, ok := tx.ParsedDate()
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())

	for _, bad := range []string{"", "29/02/2024", "2024-13-01", "2023-02-29"} {
		tx := &Transaction{Date: bad}
		_, ok := tx.ParsedDate()
		assert.False(t, ok, bad)
	}
}

func TestID(t *testing.T) {
	a := NewDeposit(now, "a", "b", decimal.NewFromInt(1))
	b := NewDeposit(now, "a", "b", decimal.NewFromInt(1))
	c := NewDeposit(now, "a", "b", decimal.NewFromInt(2))

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
}
