package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
	"github.com/66gu1/filmoradmin/internal/infrastructure/metrics"
	"github.com/66gu1/filmoradmin/internal/infrastructure/secure"
)

type LoginCmd struct {
	Username string
	Password []byte `json:"-"`
	IP       string
}

const (
	CodeInvalidCredentials apperr.Code = "auth/invalid_credentials" //nolint:gosec
	CodeInvalidUpdate      apperr.Code = "auth/invalid_update"

	FieldCompanyID    apperr.Field = "company_id"
	FieldClearCompany apperr.Field = "clear_company"
	FieldIP           apperr.Field = "ip"
)

// ErrInvalidCredentials is the only login failure the UI sees, whatever the cause.
func ErrInvalidCredentials() error {
	return apperr.New("invalid username or password", CodeInvalidCredentials, apperr.ClassUnauthorized, apperr.LogLevelWarn)
}

func ErrTooManyAttempts() error {
	return apperr.ErrTooManyRequests().WithUserMessage("too many login attempts, try again later")
}

type Core interface {
	Authorize(ctx context.Context, username, password string) (*auth.Session, error)
	Resolve(ctx context.Context, session *auth.Session, update *auth.Update) (*auth.Session, auth.Transition)
}

type Limiter interface {
	Allow(ctx context.Context, ip, username string) (bool, error)
	Reset(ctx context.Context, ip, username string) error
}

type Observer interface {
	Login(result string)
	Refresh(result string)
}

type Service struct {
	core     Core
	limiter  Limiter
	observer Observer
}

// NewService wires the login flow; limiter may be nil.
func NewService(core Core, limiter Limiter, observer Observer) *Service {
	if core == nil || observer == nil {
		panic("nil core or observer")
	}
	return &Service{
		core:     core,
		limiter:  limiter,
		observer: observer,
	}
}

func (s *Service) Login(ctx context.Context, req LoginCmd) (*auth.Session, error) {
	defer secure.ZeroBytes(req.Password)

	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) == 0 {
		err := ErrInvalidCredentials()
		logger.Warn(ctx, err).
			Str(FieldIP.String(), req.IP).
			Msg("auth.service.Login: empty credentials")
		s.observer.Login(metrics.ResultRejected)
		return nil, fmt.Errorf("auth.service.Login: %w", err)
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, req.IP, username)
		if err != nil {
			// Fail open on limiter errors.
			logger.Error(ctx, err).
				Str(auth.FieldUsername.String(), username).
				Str(FieldIP.String(), req.IP).
				Msg("auth.service.Login.limiter.Allow")
		} else if !allowed {
			err = ErrTooManyAttempts()
			logger.Warn(ctx, err).
				Str(auth.FieldUsername.String(), username).
				Str(FieldIP.String(), req.IP).
				Msg("auth.service.Login: rate limited")
			s.observer.Login(metrics.ResultRejected)
			return nil, fmt.Errorf("auth.service.Login: %w", err)
		}
	}

	session, err := s.core.Authorize(ctx, username, string(req.Password))
	if err != nil {
		logger.Error(ctx, err).
			Str(auth.FieldUsername.String(), username).
			Msg("auth.service.Login.core.Authorize")
		s.observer.Login(metrics.ResultFailure)
		return nil, fmt.Errorf("auth.service.Login: %w", ErrInvalidCredentials())
	}
	if session == nil {
		err = ErrInvalidCredentials()
		logger.Warn(ctx, err).
			Str(auth.FieldUsername.String(), username).
			Msg("auth.service.Login: credentials rejected")
		s.observer.Login(metrics.ResultRejected)
		return nil, fmt.Errorf("auth.service.Login: %w", err)
	}

	if s.limiter != nil {
		if err = s.limiter.Reset(ctx, req.IP, username); err != nil {
			logger.Warn(ctx, err).
				Str(auth.FieldUsername.String(), username).
				Msg("auth.service.Login.limiter.Reset")
		}
	}

	s.observer.Login(metrics.ResultSuccess)
	logger.Info(ctx).
		Str(auth.FieldUserID.String(), session.User.ID).
		Str(auth.FieldUsername.String(), username).
		Msg("auth.service.Login: signed in")

	return session, nil
}

// Resolve refreshes the session when needed. A nil result means the user has to sign in again.
func (s *Service) Resolve(ctx context.Context, session *auth.Session) (*auth.Session, auth.Transition) {
	return s.resolve(ctx, session, nil)
}

// UpdateSession applies a client-side change such as switching the active company.
func (s *Service) UpdateSession(ctx context.Context, session *auth.Session, update auth.Update) (*auth.Session, auth.Transition, error) {
	if session == nil {
		err := apperr.ErrUnauthorized()
		logger.Warn(ctx, err).Msg("auth.service.UpdateSession: no session")
		return nil, auth.TransitionNone, fmt.Errorf("auth.service.UpdateSession: %w", err)
	}

	if update.CompanyID != nil && *update.CompanyID <= 0 {
		err := apperr.New("invalid company id", CodeInvalidUpdate, apperr.ClassBadRequest, apperr.LogLevelWarn).
			WithViolation(apperr.Violation{Field: FieldCompanyID, Rule: apperr.RuleInvalidFormat})
		logger.Warn(ctx, err).
			Str(auth.FieldUserID.String(), session.User.ID).
			Int64(FieldCompanyID.String(), *update.CompanyID).
			Msg("auth.service.UpdateSession")
		return nil, auth.TransitionNone, fmt.Errorf("auth.service.UpdateSession: %w", err)
	}
	if update.ClearCompany && (update.CompanyID != nil || update.Company != nil) {
		err := apperr.New("clear_company cannot be combined with a company", CodeInvalidUpdate, apperr.ClassBadRequest, apperr.LogLevelWarn).
			WithViolation(apperr.Violation{Field: FieldClearCompany, Rule: apperr.RuleForbidden})
		logger.Warn(ctx, err).
			Str(auth.FieldUserID.String(), session.User.ID).
			Msg("auth.service.UpdateSession")
		return nil, auth.TransitionNone, fmt.Errorf("auth.service.UpdateSession: %w", err)
	}
	if update.Company != nil && (update.CompanyID == nil || update.Company.ID != *update.CompanyID) {
		err := apperr.New("company does not match company id", CodeInvalidUpdate, apperr.ClassBadRequest, apperr.LogLevelWarn).
			WithViolation(apperr.Violation{Field: FieldCompanyID, Rule: apperr.RuleInvalidFormat})
		logger.Warn(ctx, err).
			Str(auth.FieldUserID.String(), session.User.ID).
			Msg("auth.service.UpdateSession")
		return nil, auth.TransitionNone, fmt.Errorf("auth.service.UpdateSession: %w", err)
	}

	out, transition := s.resolve(ctx, session, &update)
	if out == nil {
		err := apperr.ErrUnauthorized()
		logger.Warn(ctx, err).
			Str(auth.FieldUserID.String(), session.User.ID).
			Msg("auth.service.UpdateSession: signed out")
		return nil, transition, fmt.Errorf("auth.service.UpdateSession: %w", err)
	}

	return out, transition, nil
}

func (s *Service) resolve(ctx context.Context, session *auth.Session, update *auth.Update) (*auth.Session, auth.Transition) {
	out, transition := s.core.Resolve(ctx, session, update)

	switch transition {
	case auth.TransitionRefreshed:
		s.observer.Refresh(metrics.ResultSuccess)
		logger.Info(ctx).
			Str(auth.FieldUserID.String(), out.User.ID).
			Msg("auth.service.Resolve: access token refreshed")
	case auth.TransitionRefreshFailed:
		s.observer.Refresh(metrics.ResultFailure)
		logger.Warn(ctx, nil).
			Str(auth.FieldUserID.String(), out.User.ID).
			Int(auth.FieldAttempts.String(), out.RefreshAttempts).
			Str(auth.FieldState.String(), string(out.Error)).
			Msg("auth.service.Resolve: refresh failed")
	case auth.TransitionSignedOut:
		s.observer.Refresh(metrics.ResultSignedOut)
		logger.Warn(ctx, nil).
			Str(auth.FieldUserID.String(), session.User.ID).
			Msg("auth.service.Resolve: session ended")
	case auth.TransitionNone, auth.TransitionUpdated:
	}

	return out, transition
}
