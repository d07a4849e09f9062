package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPrompt returns a stable fingerprint for a prompt, used to correlate log
// lines without echoing prompt text into logs.
func HashPrompt(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}
