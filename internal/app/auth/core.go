package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	FieldSessionID  apperr.Field = "session_id"
	FieldUserID     apperr.Field = "user_id"
	FieldUsername   apperr.Field = "username"
	FieldSession    apperr.Field = "session"
	FieldState      apperr.Field = "state"
	FieldTransition apperr.Field = "transition"
	FieldAttempts   apperr.Field = "refresh_attempts"
)

const DefaultMaxRefreshAttempts = 3

type Backend interface {
	Login(ctx context.Context, username, password string) (backend.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (backend.TokenPair, error)
	EmployeeInfo(ctx context.Context, token string) (backend.Employee, error)
	PermissionCatalog(ctx context.Context, token string) ([]backend.Permission, error)
	AssignedPermissions(ctx context.Context, token string) ([]backend.AssignedPermission, error)
	Company(ctx context.Context, token string, id int64) (backend.Company, error)
}

type TimeGenerator interface {
	Now() time.Time
}

type Config struct {
	MaxRefreshAttempts int  `mapstructure:"max_refresh_attempts" json:"max_refresh_attempts"`
	StrictExpiry       bool `mapstructure:"strict_expiry" json:"strict_expiry"`
}

type core struct {
	backend       Backend
	timeGenerator TimeGenerator
	cfg           Config
}

func NewCore(client Backend, timeGenerator TimeGenerator, cfg Config) *core {
	if cfg.MaxRefreshAttempts <= 0 {
		panic("auth.core: invalid config")
	}
	if client == nil || timeGenerator == nil {
		panic("auth.core: nil dependency")
	}

	return &core{
		backend:       client,
		timeGenerator: timeGenerator,
		cfg:           cfg,
	}
}

// Authorize exchanges credentials for a new session. A nil session with a nil error means the
// backend refused the credentials.
func (c *core) Authorize(ctx context.Context, username, password string) (*Session, error) {
	pair, err := c.backend.Login(ctx, username, password)
	if err != nil {
		if backend.IsRejected(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth.core.Authorize: %w", err)
	}
	if pair.AccessToken == "" {
		return nil, nil
	}

	var (
		employee backend.Employee
		company  *backend.Company
		catalog  []backend.Permission
		assigned []backend.AssignedPermission
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employee, err = c.backend.EmployeeInfo(gctx, pair.AccessToken)
		if err != nil {
			return err
		}
		if employee.CompanyID == nil {
			return nil
		}
		cmp, err := c.backend.Company(gctx, pair.AccessToken, *employee.CompanyID)
		if err != nil {
			return err
		}
		company = &cmp
		return nil
	})
	g.Go(func() error {
		var err error
		catalog, err = c.backend.PermissionCatalog(gctx, pair.AccessToken)
		return err
	})
	g.Go(func() error {
		var err error
		assigned, err = c.backend.AssignedPermissions(gctx, pair.AccessToken)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("auth.core.Authorize: %w", err)
	}

	now := c.timeGenerator.Now()
	session := &Session{
		User:         newUser(employee, company, mergePermissions(employee.Permissions, catalog, assigned)),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    ExpiryFromToken(pair.AccessToken, now, c.cfg.StrictExpiry),
	}

	return session, nil
}

// Resolve runs on every session read. It never fails: refresh problems are recorded on the
// session itself and a nil session means the user has to sign in again.
func (c *core) Resolve(ctx context.Context, session *Session, update *Update) (*Session, Transition) {
	if session == nil {
		return nil, TransitionNone
	}

	s := *session
	transition := TransitionNone
	if update.applyTo(&s.User) {
		transition = TransitionUpdated
	}

	now := c.timeGenerator.Now()
	switch s.State(now) {
	case StateValid:
		return &s, transition
	case StateExpired, StateErrored:
		return c.refresh(ctx, s, now)
	}

	return nil, TransitionSignedOut
}

func (c *core) refresh(ctx context.Context, s Session, now time.Time) (*Session, Transition) {
	if s.RefreshAttempts > c.cfg.MaxRefreshAttempts {
		return nil, TransitionSignedOut
	}
	if s.RefreshToken == "" {
		s.Error = ErrorRefreshTokenError
		return nil, TransitionSignedOut
	}

	pair, err := c.backend.RefreshToken(ctx, s.RefreshToken)
	if err != nil || pair.AccessToken == "" {
		s.RefreshAttempts++
		s.Error = ErrorRefreshAccessTokenError
		if s.RefreshAttempts > c.cfg.MaxRefreshAttempts {
			return nil, TransitionSignedOut
		}
		return &s, TransitionRefreshFailed
	}

	s.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		s.RefreshToken = pair.RefreshToken
	}
	s.ExpiresAt = ExpiryFromToken(pair.AccessToken, now, c.cfg.StrictExpiry)
	s.RefreshAttempts = 0
	s.Error = ErrorNone

	return &s, TransitionRefreshed
}

func newUser(e backend.Employee, company *backend.Company, permissions []string) User {
	u := User{
		ID:          strconv.FormatInt(e.ID, 10),
		Username:    e.Username,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Role:        e.Role,
		CompanyID:   e.CompanyID,
		Permissions: permissions,
	}
	if company != nil {
		u.Company = &Company{ID: company.ID, Name: company.Name}
	}
	return u
}

// mergePermissions appends the catalog names of the assigned permissions to the profile's own
// permission strings, keeping the first occurrence of each.
func mergePermissions(profile []string, catalog []backend.Permission, assigned []backend.AssignedPermission) []string {
	ids := lo.SliceToMap(assigned, func(a backend.AssignedPermission) (int64, struct{}) {
		return a.PermissionID, struct{}{}
	})
	names := lo.FilterMap(catalog, func(p backend.Permission, _ int) (string, bool) {
		_, ok := ids[p.ID]
		return p.Name, ok
	})

	return lo.Uniq(append(append(make([]string, 0, len(profile)+len(names)), profile...), names...))
}
