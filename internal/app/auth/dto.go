package auth

import (
	"time"
)

// ErrorCode tags a session whose last refresh went wrong. The UI reads it to decide whether to
// ask the user to sign in again.
type ErrorCode string

const (
	ErrorNone                    ErrorCode = ""
	ErrorRefreshAccessTokenError ErrorCode = "RefreshAccessTokenError"
	ErrorRefreshTokenError       ErrorCode = "RefreshTokenError"
)

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Role        string   `json:"role"`
	CompanyID   *int64   `json:"company_id,omitempty"`
	Company     *Company `json:"company,omitempty"`
	Permissions []string `json:"permissions"`
}

type Session struct {
	// ID is set only when the record lives in a server-side store.
	ID              string    `json:"id,omitempty"`
	User            User      `json:"user"`
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	ExpiresAt       time.Time `json:"expires_at"`
	Error           ErrorCode `json:"error,omitempty"`
	RefreshAttempts int       `json:"refresh_attempts"`
}

// Update is a client-triggered partial change, e.g. switching the active company. Absent
// fields leave the session as it is; ClearCompany drops the affiliation.
type Update struct {
	CompanyID    *int64   `json:"company_id"`
	Company      *Company `json:"company"`
	ClearCompany bool     `json:"clear_company"`
}

func (u *Update) IsEmpty() bool {
	return u == nil || (u.CompanyID == nil && u.Company == nil && !u.ClearCompany)
}

// applyTo merges the update into user and reports whether anything changed.
func (u *Update) applyTo(user *User) bool {
	if u.IsEmpty() {
		return false
	}
	if u.ClearCompany {
		changed := user.CompanyID != nil || user.Company != nil
		user.CompanyID, user.Company = nil, nil
		return changed
	}

	changed := false
	if u.CompanyID != nil && (user.CompanyID == nil || *user.CompanyID != *u.CompanyID) {
		id := *u.CompanyID
		user.CompanyID = &id
		changed = true
		if user.Company != nil && user.Company.ID != id {
			user.Company = nil
		}
	}
	if u.Company != nil && (user.Company == nil || *user.Company != *u.Company) {
		company := *u.Company
		user.Company = &company
		changed = true
	}

	return changed
}

type State int

const (
	StateValid State = iota
	StateExpired
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// State classifies the session at now. A session keeps its error tag while it is still valid.
func (s *Session) State(now time.Time) State {
	if now.Before(s.ExpiresAt) {
		return StateValid
	}
	if s.Error != ErrorNone {
		return StateErrored
	}
	return StateExpired
}

// Transition reports what Resolve did to the session.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionUpdated
	TransitionRefreshed
	TransitionRefreshFailed
	TransitionSignedOut
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionUpdated:
		return "updated"
	case TransitionRefreshed:
		return "refreshed"
	case TransitionRefreshFailed:
		return "refresh_failed"
	case TransitionSignedOut:
		return "signed_out"
	}
	return "unknown"
}

// Changed reports whether the stored session has to be rewritten or cleared.
func (t Transition) Changed() bool {
	return t != TransitionNone
}
