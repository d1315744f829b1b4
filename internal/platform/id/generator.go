package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionIDBytes is the entropy of a session ID; its hex form is twice as long.
const SessionIDBytes = 16

// Generator creates opaque IDs suitable for session cookies.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, SessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Valid reports whether v looks like an ID from RandomGenerator.
// Client-supplied session IDs that fail this are replaced, never stored.
func Valid(v string) bool {
	if len(v) != SessionIDBytes*2 {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
