package auth_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestExpiryFromToken(t *testing.T) {
	t.Parallel()

	var (
		now      = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		future   = now.Add(15 * time.Minute)
		past     = now.Add(-10 * time.Second)
		fallback = now.Add(24 * time.Hour)
		header   = base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	)

	tests := []struct {
		name   string
		token  string
		strict bool
		want   time.Time
	}{
		{
			name:   "future exp",
			token:  tokenExpiringAt(future),
			strict: true,
			want:   future,
		},
		{
			name:   "past exp strict",
			token:  tokenExpiringAt(past),
			strict: true,
			want:   fallback,
		},
		{
			name:   "exp equal to now strict",
			token:  tokenExpiringAt(now),
			strict: true,
			want:   fallback,
		},
		{
			name:  "past exp lenient",
			token: tokenExpiringAt(past),
			want:  past,
		},
		{
			name:   "empty",
			token:  "",
			strict: true,
			want:   fallback,
		},
		{
			name:   "two segments",
			token:  "abc.def",
			strict: true,
			want:   fallback,
		},
		{
			name:   "payload is not base64",
			token:  header + ".%%%.sig",
			strict: true,
			want:   fallback,
		},
		{
			name:   "payload is not json",
			token:  header + "." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".sig",
			strict: true,
			want:   fallback,
		},
		{
			name:   "missing exp",
			token:  signedToken(jwt.RegisteredClaims{Subject: "7"}),
			strict: true,
			want:   fallback,
		},
		{
			name:   "exp is a string",
			token:  header + "." + base64.RawURLEncoding.EncodeToString([]byte(`{"exp":"tomorrow"}`)) + ".sig",
			strict: true,
			want:   fallback,
		},
		{
			name:   "signature is not checked",
			token:  header + "." + base64.RawURLEncoding.EncodeToString([]byte(`{"exp":1740834000}`)) + ".garbage",
			strict: true,
			want:   time.Unix(1740834000, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := auth.ExpiryFromToken(tt.token, now, tt.strict)
			require.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestExpiryFromToken_Milliseconds(t *testing.T) {
	t.Parallel()

	now := time.Now()
	exp := now.Add(time.Hour).Unix()
	token := signedToken(jwt.MapClaims{"exp": exp})

	got := auth.ExpiryFromToken(token, now, true)
	require.Equal(t, exp*1000, got.UnixMilli())
}

func TestExpiryFromToken_FallbackIsADayAhead(t *testing.T) {
	t.Parallel()

	now := time.Now()
	got := auth.ExpiryFromToken(tokenExpiringAt(now.Add(-10*time.Second)), now, true)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), got, 5*time.Second)
}

func signedToken(claims jwt.Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		panic(err)
	}
	return token
}

func tokenExpiringAt(t time.Time) string {
	return signedToken(jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(t)})
}
