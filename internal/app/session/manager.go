package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/golang-jwt/jwt/v5"
)

const (
	BackendCookie   = "cookie"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"

	DefaultCookieName = "filmoradmin_session"

	// Browsers drop cookies above 4096 bytes including the name and attributes, so larger
	// tokens are split over name.0, name.1, ...
	cookieChunkSize = 3800
	maxCookieChunks = 8

	sessionIDBytes = 32
)

var ErrCookieTooLarge = errors.New("session: cookie too large")

type Config struct {
	Backend    string `mapstructure:"backend" json:"backend"`
	CookieName string `mapstructure:"cookie_name" json:"cookie_name"`
	TTLMinutes int    `mapstructure:"ttl_minutes" json:"ttl_minutes"`
	Secure     bool   `mapstructure:"secure" json:"secure"`
}

type TokenCodec interface {
	GenerateToken(claims jwt.Claims) (string, error)
	ParseToken(tokenStr string, claims jwt.Claims) error
}

type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

type RNDGenerator interface {
	New(n int) (string, error)
}

// cookieClaims carries either the sealed record itself (Data) or a pointer to it (SID).
type cookieClaims struct {
	SID  string `json:"sid,omitempty"`
	Data string `json:"data,omitempty"`
	jwt.RegisteredClaims
}

// Manager moves sessions between the request cookie and, when a Store is configured,
// the server-side store.
type Manager struct {
	codec         TokenCodec
	sealer        Sealer
	store         Store
	rndGenerator  RNDGenerator
	timeGenerator TimeGenerator
	cfg           Config
}

// NewManager builds a cookie-only manager when store is nil.
func NewManager(codec TokenCodec, sealer Sealer, store Store, rndGenerator RNDGenerator, timeGenerator TimeGenerator, cfg Config) *Manager {
	if cfg.TTLMinutes <= 0 {
		panic("session.Manager: invalid config")
	}
	if codec == nil || sealer == nil || rndGenerator == nil || timeGenerator == nil {
		panic("session.Manager: nil dependency")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}

	return &Manager{
		codec:         codec,
		sealer:        sealer,
		store:         store,
		rndGenerator:  rndGenerator,
		timeGenerator: timeGenerator,
		cfg:           cfg,
	}
}

func (m *Manager) CookieName() string {
	return m.cfg.CookieName
}

// Load returns the session carried by r. Missing, tampered and expired cookies yield nil
// without an error; only store failures are reported.
func (m *Manager) Load(r *http.Request) (*auth.Session, error) {
	ctx := r.Context()

	claims, ok := m.readCookie(r)
	if !ok {
		return nil, nil
	}

	var sealed []byte
	switch {
	case m.store == nil:
		if claims.Data == "" {
			return nil, nil
		}
		data, err := base64.RawURLEncoding.DecodeString(claims.Data)
		if err != nil {
			return nil, nil
		}
		sealed = data
	default:
		if claims.SID == "" {
			return nil, nil
		}
		rec, err := m.store.Load(ctx, claims.SID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("session.Manager.Load: %w", err)
		}
		sealed = rec.Data
	}

	s, err := m.open(sealed)
	if err != nil {
		return nil, nil
	}
	if m.store != nil {
		s.ID = claims.SID
	}

	return s, nil
}

// Save writes s and sets the cookie. In store mode a new session gets its ID assigned here.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *auth.Session) error {
	if s == nil {
		return fmt.Errorf("session.Manager.Save: nil session")
	}

	now := m.timeGenerator.Now()
	expiresAt := now.Add(time.Duration(m.cfg.TTLMinutes) * time.Minute)

	sealed, err := m.seal(s)
	if err != nil {
		return fmt.Errorf("session.Manager.Save: %w", err)
	}

	claims := cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.User.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	if m.store == nil {
		claims.Data = base64.RawURLEncoding.EncodeToString(sealed)
	} else {
		if s.ID == "" {
			if s.ID, err = m.rndGenerator.New(sessionIDBytes); err != nil {
				return fmt.Errorf("session.Manager.Save: %w", err)
			}
		}
		rec := Record{ID: s.ID, UserID: s.User.ID, Data: sealed, ExpiresAt: expiresAt}
		if err = m.store.Save(ctx, rec); err != nil {
			return fmt.Errorf("session.Manager.Save: %w", err)
		}
		claims.SID = s.ID
	}

	token, err := m.codec.GenerateToken(claims)
	if err != nil {
		return fmt.Errorf("session.Manager.Save: %w", err)
	}
	if err = m.writeCookie(w, token, expiresAt); err != nil {
		return fmt.Errorf("session.Manager.Save: %w", err)
	}

	return nil
}

// Clear drops the server-side record, if any, and expires the cookie.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, m.cookie(m.cfg.CookieName, "", time.Unix(0, 0)))
	for i := 0; i < maxCookieChunks; i++ {
		if _, err := r.Cookie(m.chunkName(i)); err == nil {
			http.SetCookie(w, m.cookie(m.chunkName(i), "", time.Unix(0, 0)))
		}
	}

	if m.store == nil {
		return nil
	}
	claims, ok := m.readCookie(r)
	if !ok || claims.SID == "" {
		return nil
	}
	if err := m.store.Delete(ctx, claims.SID); err != nil {
		return fmt.Errorf("session.Manager.Clear: %w", err)
	}

	return nil
}

// writeCookie sets token as one cookie when it fits and as numbered chunks otherwise. The
// unchunked cookie wins on read, so stale chunks only need expiring after a chunked write.
func (m *Manager) writeCookie(w http.ResponseWriter, token string, expiresAt time.Time) error {
	if len(token) <= cookieChunkSize {
		http.SetCookie(w, m.cookie(m.cfg.CookieName, token, expiresAt))
		return nil
	}

	chunks := (len(token) + cookieChunkSize - 1) / cookieChunkSize
	if chunks > maxCookieChunks {
		return fmt.Errorf("%w: %d bytes", ErrCookieTooLarge, len(token))
	}
	http.SetCookie(w, m.cookie(m.cfg.CookieName, "", time.Unix(0, 0)))
	for i := 0; i < chunks; i++ {
		end := min((i+1)*cookieChunkSize, len(token))
		http.SetCookie(w, m.cookie(m.chunkName(i), token[i*cookieChunkSize:end], expiresAt))
	}
	for i := chunks; i < maxCookieChunks; i++ {
		http.SetCookie(w, m.cookie(m.chunkName(i), "", time.Unix(0, 0)))
	}

	return nil
}

func (m *Manager) chunkName(i int) string {
	return m.cfg.CookieName + "." + strconv.Itoa(i)
}

func (m *Manager) readCookie(r *http.Request) (cookieClaims, bool) {
	var value string
	if c, err := r.Cookie(m.cfg.CookieName); err == nil && c.Value != "" {
		value = c.Value
	} else {
		var b strings.Builder
		for i := 0; i < maxCookieChunks; i++ {
			chunk, err := r.Cookie(m.chunkName(i))
			if err != nil || chunk.Value == "" {
				break
			}
			b.WriteString(chunk.Value)
		}
		value = b.String()
	}
	if value == "" {
		return cookieClaims{}, false
	}

	var claims cookieClaims
	if err := m.codec.ParseToken(value, &claims); err != nil {
		return cookieClaims{}, false
	}

	return claims, true
}

func (m *Manager) cookie(name, value string, expiresAt time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
	}
	return c
}

func (m *Manager) seal(s *auth.Session) ([]byte, error) {
	plain, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	sealed, err := m.sealer.Seal(plain)
	if err != nil {
		return nil, fmt.Errorf("seal session: %w", err)
	}
	return sealed, nil
}

func (m *Manager) open(sealed []byte) (*auth.Session, error) {
	plain, err := m.sealer.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	var s auth.Session
	if err = json.Unmarshal(plain, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}
