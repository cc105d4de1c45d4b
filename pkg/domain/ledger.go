package domain

// Ledger is the full history of transactions as read from a store, in the
// order they were appended.
type Ledger struct {
	Transactions []*Transaction

	// number of rows that could not be parsed & were left out
	Skipped int
}
