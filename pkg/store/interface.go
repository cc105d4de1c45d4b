package store

import (
	"github.com/voidshard/ledger/pkg/domain"
)

// Store is somewhere we can write transactions to.
type Store interface {
	Write([]*domain.Transaction) error
}

// Ledger is the backing store of the ledger itself: it can be read in full
// & appended to one transaction at a time.
type Ledger interface {
	Read() (*domain.Ledger, error)
	Append(*domain.Transaction) error
}
