package secure_test

import (
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/secure"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type testClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

func TestTokenCodec_GenerateToken(t *testing.T) {
	t.Parallel()
	secret := []byte("mysecret")
	codec := secure.NewTokenCodec(secret)
	claims := testClaims{
		SID: "sid",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: &jwt.NumericDate{Time: time.Now().Truncate(time.Second).Add(1 * time.Hour)},
			IssuedAt:  &jwt.NumericDate{Time: time.Now().Truncate(time.Second)},
		},
	}
	tokenStr, err := codec.GenerateToken(claims)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	gotClaims := testClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, &gotClaims, func(token *jwt.Token) (interface{}, error) { return secret, nil })
	require.NoError(t, err)
	require.True(t, token.Valid)
	require.Equal(t, claims, gotClaims)
}

func TestTokenCodec_ParseToken(t *testing.T) {
	t.Parallel()
	var (
		secret = []byte("mysecret")
		codec  = secure.NewTokenCodec(secret)
		claims = testClaims{
			SID: "sid",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: &jwt.NumericDate{Time: time.Now().Truncate(time.Second).Add(1 * time.Hour)},
				IssuedAt:  &jwt.NumericDate{Time: time.Now().Truncate(time.Second)},
			},
		}
		noExpClaims = testClaims{SID: "sid"}
	)
	sign := func(method jwt.SigningMethod, c jwt.Claims, key []byte) string {
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name     string
		tokenStr string
		err      error
	}{
		{
			name:     "valid token",
			tokenStr: sign(jwt.SigningMethodHS256, claims, secret),
		},
		{
			name:     "invalid signing method",
			tokenStr: sign(jwt.SigningMethodHS384, claims, secret),
			err:      apperr.ErrUnauthorized(),
		},
		{
			name:     "wrong secret",
			tokenStr: sign(jwt.SigningMethodHS256, claims, []byte("wrongsecret")),
			err:      apperr.ErrUnauthorized(),
		},
		{
			name:     "missing exp",
			tokenStr: sign(jwt.SigningMethodHS256, noExpClaims, secret),
			err:      apperr.ErrUnauthorized(),
		},
		{
			name:     "garbage",
			tokenStr: "not-a-token",
			err:      apperr.ErrUnauthorized(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotClaims := testClaims{}
			err := codec.ParseToken(tt.tokenStr, &gotClaims)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
				require.Equal(t, claims, gotClaims)
			}
		})
	}
}

func TestSealer(t *testing.T) {
	t.Parallel()

	_, sealKey := secure.DeriveKeys([]byte("session-secret"))
	sealer, err := secure.NewSealer(sealKey)
	require.NoError(t, err)

	plaintext := []byte(`{"access_token":"a.b.c"}`)
	sealed, err := sealer.Seal(plaintext)
	require.NoError(t, err)
	require.NotContains(t, string(sealed), "access_token")

	again, err := sealer.Seal(plaintext)
	require.NoError(t, err)
	require.NotEqual(t, sealed, again, "nonce must differ between seals")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)

	tampered := append([]byte{}, sealed...)
	tampered[len(tampered)-1] ^= 0xff
	_, err = sealer.Open(tampered)
	require.ErrorIs(t, err, secure.ErrUnsealFailed)

	_, err = sealer.Open([]byte("short"))
	require.ErrorIs(t, err, secure.ErrUnsealFailed)

	_, otherKey := secure.DeriveKeys([]byte("other-secret"))
	other, err := secure.NewSealer(otherKey)
	require.NoError(t, err)
	_, err = other.Open(sealed)
	require.ErrorIs(t, err, secure.ErrUnsealFailed)
}

func TestDeriveKeys(t *testing.T) {
	t.Parallel()

	sign1, seal1 := secure.DeriveKeys([]byte("secret"))
	sign2, seal2 := secure.DeriveKeys([]byte("secret"))
	require.Equal(t, sign1, sign2)
	require.Equal(t, seal1, seal2)
	require.NotEqual(t, sign1, seal1)
	require.Len(t, seal1, 32)

	_, err := secure.NewSealer([]byte("too short"))
	require.Error(t, err)
}

func TestZeroBytes(t *testing.T) {
	t.Parallel()

	b := []byte("password")
	secure.ZeroBytes(b)
	for i := range b {
		require.Zero(t, b[i])
	}
}
