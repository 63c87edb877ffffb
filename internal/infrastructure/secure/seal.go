package secure

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"runtime"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20poly1305"
)

var ErrUnsealFailed = errors.New("secure: unseal failed")

const (
	sealKeyContext = "filmoradmin 2024 session record sealing key"
	signKeyContext = "filmoradmin 2024 session cookie signing key"
)

// ZeroBytes wipes b in place.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// DeriveKeys splits one configured secret into independent signing and sealing keys.
func DeriveKeys(secret []byte) (signKey, sealKey []byte) {
	signKey = make([]byte, 32)
	sealKey = make([]byte, chacha20poly1305.KeySize)
	blake3.DeriveKey(signKeyContext, secret, signKey)
	blake3.DeriveKey(sealKeyContext, secret, sealKey)
	return signKey, sealKey
}

// Sealer encrypts session records at rest (XChaCha20-Poly1305, random nonce prefix).
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(key []byte) (*Sealer, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("secure.NewSealer: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("Sealer.Seal: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < s.aead.NonceSize()+s.aead.Overhead() {
		return nil, fmt.Errorf("Sealer.Open: %w", ErrUnsealFailed)
	}
	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("Sealer.Open: %w", ErrUnsealFailed)
	}
	return plaintext, nil
}
