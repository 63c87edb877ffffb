package permission

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrIncompleteMatrix = errors.New("permission: incomplete role matrix")

type Role string

const (
	RoleSuperAdmin     Role = "superadmin"
	RoleAdmin          Role = "admin"
	RoleManager        Role = "manager"
	RoleContentManager Role = "content_manager"
	RoleCashier        Role = "cashier"
)

func (r Role) String() string {
	return string(r)
}

type Subject string

const (
	SubjectMovies          Subject = "movies"
	SubjectGenres          Subject = "genres"
	SubjectAgeRestrictions Subject = "age-restrictions"
	SubjectMedia           Subject = "media"
	SubjectEvents          Subject = "events"
	SubjectTemplates       Subject = "templates"
	SubjectReports         Subject = "reports"
	SubjectTransactions    Subject = "transactions"
)

// Subjects lists every subject the role matrix has to cover.
var Subjects = []Subject{
	SubjectMovies,
	SubjectGenres,
	SubjectAgeRestrictions,
	SubjectMedia,
	SubjectEvents,
	SubjectTemplates,
	SubjectReports,
	SubjectTransactions,
}

func (s Subject) String() string {
	return string(s)
}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var Actions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

func (a Action) String() string {
	return string(a)
}

// ParseAction maps an HTTP method to the action it performs.
func ParseAction(method string) (Action, bool) {
	switch method {
	case http.MethodGet, http.MethodHead:
		return ActionRead, true
	case http.MethodPost:
		return ActionCreate, true
	case http.MethodPut, http.MethodPatch:
		return ActionUpdate, true
	case http.MethodDelete:
		return ActionDelete, true
	}
	return "", false
}

type Grants map[Action]bool

// Matrix is role -> subject -> action -> allowed.
type Matrix map[Role]map[Subject]Grants

// Validate checks that every role covers every subject with every action.
func (m Matrix) Validate(subjects []Subject) error {
	for role, bySubject := range m {
		for _, subject := range subjects {
			grants, ok := bySubject[subject]
			if !ok {
				return fmt.Errorf("%w: role %q misses subject %q", ErrIncompleteMatrix, role, subject)
			}
			for _, action := range Actions {
				if _, ok = grants[action]; !ok {
					return fmt.Errorf("%w: role %q subject %q misses action %q", ErrIncompleteMatrix, role, subject, action)
				}
			}
		}
	}
	return nil
}

func (m Matrix) Allowed(role Role, subject Subject, action Action) bool {
	return m[role][subject][action]
}

func grant(create, read, update, del bool) Grants {
	return Grants{ActionCreate: create, ActionRead: read, ActionUpdate: update, ActionDelete: del}
}

var (
	full     = func() Grants { return grant(true, true, true, true) }
	readOnly = func() Grants { return grant(false, true, false, false) }
	editor   = func() Grants { return grant(true, true, true, false) }
	none     = func() Grants { return grant(false, false, false, false) }
)

var roles = Matrix{
	RoleSuperAdmin: {
		SubjectMovies:          full(),
		SubjectGenres:          full(),
		SubjectAgeRestrictions: full(),
		SubjectMedia:           full(),
		SubjectEvents:          full(),
		SubjectTemplates:       full(),
		SubjectReports:         full(),
		SubjectTransactions:    full(),
	},
	RoleAdmin: {
		SubjectMovies:          full(),
		SubjectGenres:          full(),
		SubjectAgeRestrictions: full(),
		SubjectMedia:           full(),
		SubjectEvents:          full(),
		SubjectTemplates:       full(),
		SubjectReports:         readOnly(),
		SubjectTransactions:    readOnly(),
	},
	RoleManager: {
		SubjectMovies:          readOnly(),
		SubjectGenres:          readOnly(),
		SubjectAgeRestrictions: readOnly(),
		SubjectMedia:           readOnly(),
		SubjectEvents:          editor(),
		SubjectTemplates:       editor(),
		SubjectReports:         readOnly(),
		SubjectTransactions:    readOnly(),
	},
	RoleContentManager: {
		SubjectMovies:          editor(),
		SubjectGenres:          editor(),
		SubjectAgeRestrictions: readOnly(),
		SubjectMedia:           full(),
		SubjectEvents:          readOnly(),
		SubjectTemplates:       none(),
		SubjectReports:         none(),
		SubjectTransactions:    none(),
	},
	RoleCashier: {
		SubjectMovies:          readOnly(),
		SubjectGenres:          none(),
		SubjectAgeRestrictions: none(),
		SubjectMedia:           none(),
		SubjectEvents:          readOnly(),
		SubjectTemplates:       none(),
		SubjectReports:         none(),
		SubjectTransactions:    grant(true, true, false, false),
	},
}

func init() {
	if err := roles.Validate(Subjects); err != nil {
		panic(err)
	}
}

// Roles returns the static role matrix.
func Roles() Matrix {
	return roles
}
