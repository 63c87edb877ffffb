package auth

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FallbackTTL is used when the access token does not tell us when it expires.
const FallbackTTL = 24 * time.Hour

// ExpiryFromToken reads the exp claim of a JWT without verifying its signature.
// Malformed tokens, tokens without exp and, in strict mode, tokens whose exp is not after now
// all resolve to now + FallbackTTL.
func ExpiryFromToken(token string, now time.Time, strict bool) time.Time {
	fallback := now.Add(FallbackTTL)

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fallback
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return fallback
	}

	var claims jwt.MapClaims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	if strict && !exp.After(now) {
		return fallback
	}

	return exp.Time
}
