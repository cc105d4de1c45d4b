package store

import (
	"encoding/json"
	"os"

	"github.com/voidshard/ledger/pkg/domain"
)

// JSONFile writes the given transactions out as a single JSON array,
// replacing the file if it exists.
type JSONFile struct {
	filename string
}

func NewJSONFile(filename string) Store {
	return &JSONFile{filename: filename}
}

func (f *JSONFile) Write(txns []*domain.Transaction) error {
	if txns == nil {
		txns = []*domain.Transaction{}
	}
	data, err := json.MarshalIndent(txns, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.filename, data, 0644)
}
