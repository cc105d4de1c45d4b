package crypto

import (
	"encoding/hex"

	"github.com/gtank/cryptopasta"
)

// Fingerprint returns a hex encoded, tagged hash of data.
//
// The same (tag, data) pair always yields the same value, so it's suitable
// as a document ID for anything we export more than once.
func Fingerprint(tag string, data []byte) string {
	return hex.EncodeToString(cryptopasta.Hash(tag, data))
}
