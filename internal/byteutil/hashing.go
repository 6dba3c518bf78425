package byteutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex encoded SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
