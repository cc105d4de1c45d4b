package store

import (
	"fmt"
	"strings"
)

// Open returns the Store described by target, in the form kind:location eg.
//
//	jsonfile:/path/to/file.json
//	es8:http://elasticsearch:9200
//	sqlite:/path/to/ledger.db
//	pipe:/path/to/transactions.csv
func Open(target string) (Store, error) {
	bits := strings.SplitN(target, ":", 2)
	if len(bits) != 2 || bits[1] == "" {
		return nil, fmt.Errorf("invalid target %q, expected kind:location eg. [jsonfile:/path/to/file.json] [es8:http://elasticsearch:9200] [sqlite:/path/to/ledger.db] [pipe:/path/to/transactions.csv]", target)
	}

	switch bits[0] {
	case "jsonfile":
		return NewJSONFile(bits[1]), nil
	case "es8":
		return NewElasticsearchV8(bits[1]), nil
	case "sqlite":
		return NewSQLite(bits[1]), nil
	case "pipe":
		return NewPipeFile(bits[1]), nil
	}

	return nil, fmt.Errorf("unknown store kind %q", bits[0])
}
