package server

import (
	"crypto/rand"
	"encoding/hex"
)

// GeneratePlayerID creates a random 16-hex-character player ID.
// Phones store it in localStorage so reconnects keep the same seat.
func GeneratePlayerID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
