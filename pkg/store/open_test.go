package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	cases := map[string]interface{}{
		"jsonfile:/tmp/out.json":    &JSONFile{},
		"es8:http://localhost:9200": &ElasticsearchV8{},
		"sqlite:/tmp/ledger.db":     &SQLite{},
		"pipe:/tmp/copy.csv":        &PipeFile{},
	}

	for target, want := range cases {
		t.Run(target, func(t *testing.T) {
			s, err := Open(target)
			require.NoError(t, err)
			assert.IsType(t, want, s)
		})
	}
}

func TestOpenInvalid(t *testing.T) {
	for _, target := range []string{"", "out.json", "jsonfile:", "ftp:/tmp/x"} {
		_, err := Open(target)
		assert.Error(t, err, target)
	}
}
