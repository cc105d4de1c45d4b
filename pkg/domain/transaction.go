package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voidshard/ledger/pkg/crypto"
)

const (
	// Delimiter separates fields of a persisted transaction.
	Delimiter = "|"

	// DateFormat & TimeFormat are how a transaction is stamped.
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"

	// Header is written as the first line of a new ledger file.
	Header = "date|time|description|vendor|amount"

	// HeaderToken marks the first line of a file as the header.
	HeaderToken = "date"

	fieldCount = 5
	idTag      = "ledger.transaction"
)

var (
	ErrFieldCount   = errors.New("row does not have 5 fields")
	ErrAmount       = errors.New("amount is not a decimal number")
	ErrInvalidField = errors.New("field contains a delimiter or line break")
)

// Transaction is a single ledger entry. Deposits are positive, payments
// negative.
type Transaction struct {
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Description string          `json:"description"`
	Vendor      string          `json:"vendor"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewDeposit creates a transaction stamped at now with the amount as given.
func NewDeposit(now time.Time, description, vendor string, amount decimal.Decimal) *Transaction {
	return newTransaction(now, description, vendor, amount)
}

// NewPayment creates a transaction stamped at now. The amount is always
// stored as a negative magnitude, whatever sign it was entered with.
func NewPayment(now time.Time, description, vendor string, amount decimal.Decimal) *Transaction {
	return newTransaction(now, description, vendor, amount.Abs().Neg())
}

func newTransaction(now time.Time, description, vendor string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Date:        now.Format(DateFormat),
		Time:        now.Format(TimeFormat),
		Description: description,
		Vendor:      vendor,
		Amount:      amount,
	}
}

// Validate checks the transaction can be written as a single row & read
// back as the same 5 fields.
func (t *Transaction) Validate() error {
	for name, value := range map[string]string{
		"date":        t.Date,
		"time":        t.Time,
		"description": t.Description,
		"vendor":      t.Vendor,
	} {
		if strings.ContainsAny(value, Delimiter+"\r\n") {
			return fmt.Errorf("%s %q: %w", name, value, ErrInvalidField)
		}
	}
	return nil
}

// IsDeposit reports if the amount is non-negative. Zero counts as a deposit.
func (t *Transaction) IsDeposit() bool {
	return !t.Amount.IsNegative()
}

// IsPayment reports if the amount is negative.
func (t *Transaction) IsPayment() bool {
	return t.Amount.IsNegative()
}

// ParsedDate returns the date as a time (midnight UTC), and false if the
// date isn't in YYYY-MM-DD form.
func (t *Transaction) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateFormat, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Line returns the persisted form of the transaction, without a newline.
func (t *Transaction) Line() string {
	return strings.Join([]string{
		t.Date,
		t.Time,
		t.Description,
		t.Vendor,
		t.Amount.String(),
	}, Delimiter)
}

// ID is a stable fingerprint of the transaction's contents.
func (t *Transaction) ID() string {
	return crypto.Fingerprint(idTag, []byte(t.Line()))
}

func (t *Transaction) JSON() ([]byte, error) {
	return json.Marshal(t)
}

// ParseLine is the inverse of Line.
func ParseLine(line string) (*Transaction, error) {
	bits := strings.Split(line, Delimiter)
	if len(bits) != fieldCount {
		return nil, fmt.Errorf("got %d: %w", len(bits), ErrFieldCount)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(bits[4]))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", bits[4], ErrAmount)
	}

	return &Transaction{
		Date:        bits[0],
		Time:        bits[1],
		Description: bits[2],
		Vendor:      bits[3],
		Amount:      amount,
	}, nil
}
