package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key derives a fixed-length cache key from an operation name and its canonical
// request body.
func Key(operation string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(operation))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
