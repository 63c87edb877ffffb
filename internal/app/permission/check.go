package permission

import (
	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/samber/lo"
)

// CheckPermission reports whether the session holds every required permission string.
// An empty list only requires a session.
func CheckPermission(s *auth.Session, required []string) bool {
	if s == nil {
		return false
	}
	return lo.Every(s.User.Permissions, required)
}

// HasPermission looks the session's role up in the static role matrix.
func HasPermission(s *auth.Session, subject Subject, action Action) bool {
	if s == nil {
		return false
	}
	return roles.Allowed(Role(s.User.Role), subject, action)
}

// HasPagePermission reports whether the role may do anything at all with subject.
func HasPagePermission(s *auth.Session, subject Subject) bool {
	if s == nil {
		return false
	}
	return lo.SomeBy(Actions, func(a Action) bool {
		return roles.Allowed(Role(s.User.Role), subject, a)
	})
}
