package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const defaultSize = 16

// Generator creates opaque ids, used to correlate requests in logs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns hex encoded random bytes.
type RandomGenerator struct {
	size int
}

// NewRandomGenerator returns ids of size random bytes (2*size hex chars).
// A non-positive size falls back to 16 bytes.
func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = defaultSize
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
