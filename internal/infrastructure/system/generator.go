package system

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// RNDGenerator produces opaque, URL-safe identifiers such as server-side session ids.
type RNDGenerator struct{}

func (g *RNDGenerator) New(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("RNDGenerator.New: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

type TimeGenerator struct{}

func (g *TimeGenerator) Now() time.Time {
	return time.Now().UTC()
}
