package permission

import (
	"fmt"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/samber/lo"
)

// Authorizer decides what a session may do with a subject. Results drive rendering and
// not-found answers only; the backend enforces on every call.
type Authorizer interface {
	Can(s *auth.Session, subject Subject, action Action) bool
	CanView(s *auth.Session, subject Subject) bool
}

// FlatList checks backend-issued permission strings such as "create_branch".
type FlatList struct {
	// Names maps a subject to the noun used in its permission strings.
	Names map[Subject]string
}

func NewFlatList(names map[Subject]string) *FlatList {
	return &FlatList{Names: names}
}

// PermissionName returns the permission string for subject and action, e.g. "view_branch".
func (f *FlatList) PermissionName(subject Subject, action Action) (string, bool) {
	noun, ok := f.Names[subject]
	if !ok {
		return "", false
	}
	verb := string(action)
	if action == ActionRead {
		verb = "view"
	}
	return fmt.Sprintf("%s_%s", verb, noun), true
}

func (f *FlatList) Can(s *auth.Session, subject Subject, action Action) bool {
	name, ok := f.PermissionName(subject, action)
	if !ok {
		return false
	}
	return CheckPermission(s, []string{name})
}

func (f *FlatList) CanView(s *auth.Session, subject Subject) bool {
	return lo.SomeBy(Actions, func(a Action) bool {
		return f.Can(s, subject, a)
	})
}

type MatrixAuthorizer struct {
	matrix Matrix
}

// NewMatrix wraps m; a nil m means the static role matrix.
func NewMatrix(m Matrix) *MatrixAuthorizer {
	if m == nil {
		m = roles
	}
	return &MatrixAuthorizer{matrix: m}
}

func (a *MatrixAuthorizer) Can(s *auth.Session, subject Subject, action Action) bool {
	if s == nil {
		return false
	}
	return a.matrix.Allowed(Role(s.User.Role), subject, action)
}

func (a *MatrixAuthorizer) CanView(s *auth.Session, subject Subject) bool {
	return lo.SomeBy(Actions, func(action Action) bool {
		return a.Can(s, subject, action)
	})
}

// Policy picks a strategy per subject. Subjects without an entry are denied.
type Policy struct {
	strategies map[Subject]Authorizer
}

func NewPolicy() *Policy {
	return &Policy{strategies: make(map[Subject]Authorizer)}
}

func (p *Policy) Use(strategy Authorizer, subjects ...Subject) *Policy {
	for _, s := range subjects {
		p.strategies[s] = strategy
	}
	return p
}

func (p *Policy) Strategy(subject Subject) (Authorizer, bool) {
	a, ok := p.strategies[subject]
	return a, ok
}

func (p *Policy) Can(s *auth.Session, subject Subject, action Action) bool {
	a, ok := p.strategies[subject]
	if !ok {
		return false
	}
	return a.Can(s, subject, action)
}

func (p *Policy) CanView(s *auth.Session, subject Subject) bool {
	a, ok := p.strategies[subject]
	if !ok {
		return false
	}
	return a.CanView(s, subject)
}
