package permission_test

import (
	"net/http"
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/permission"
	"github.com/stretchr/testify/require"
)

func sessionWith(role string, permissions ...string) *auth.Session {
	return &auth.Session{User: auth.User{ID: "1", Role: role, Permissions: permissions}}
}

func TestCheckPermission(t *testing.T) {
	t.Parallel()

	branch := sessionWith("manager", "create_branch", "update_branch")

	tests := []struct {
		name     string
		session  *auth.Session
		required []string
		want     bool
	}{
		{name: "nil session, nothing required", session: nil, required: nil, want: false},
		{name: "nil session", session: nil, required: []string{"create_branch"}, want: false},
		{name: "empty required", session: sessionWith("cashier"), required: []string{}, want: true},
		{name: "nil required", session: branch, required: nil, want: true},
		{name: "missing permission", session: branch, required: []string{"delete_branch"}, want: false},
		{name: "held permission", session: branch, required: []string{"create_branch"}, want: true},
		{name: "superset", session: branch, required: []string{"create_branch", "update_branch"}, want: true},
		{name: "partially held", session: branch, required: []string{"create_branch", "delete_branch"}, want: false},
		{name: "exact match only", session: branch, required: []string{"create_branc"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, permission.CheckPermission(tt.session, tt.required))
		})
	}
}

func TestCheckPermission_Membership(t *testing.T) {
	t.Parallel()

	held := []string{"a", "b", "create_event_schedule"}
	s := sessionWith("admin", held...)
	for _, x := range []string{"a", "b", "c", "create_event_schedule", ""} {
		want := false
		for _, h := range held {
			want = want || h == x
		}
		require.Equal(t, want, permission.CheckPermission(s, []string{x}), x)
	}
}

func TestHasPermission_MatchesMatrix(t *testing.T) {
	t.Parallel()

	for role, bySubject := range permission.Roles() {
		s := sessionWith(role.String())
		for subject, grants := range bySubject {
			for action, allowed := range grants {
				require.Equal(t, allowed, permission.HasPermission(s, subject, action), "%s/%s/%s", role, subject, action)
			}
		}
	}
}

func TestHasPermission(t *testing.T) {
	t.Parallel()

	require.False(t, permission.HasPermission(nil, permission.SubjectMovies, permission.ActionRead))
	require.False(t, permission.HasPermission(sessionWith("unknown"), permission.SubjectMovies, permission.ActionRead))
	require.False(t, permission.HasPermission(sessionWith("admin"), permission.Subject("unknown"), permission.ActionRead))
	require.True(t, permission.HasPermission(sessionWith("admin"), permission.SubjectMovies, permission.ActionDelete))
	require.False(t, permission.HasPermission(sessionWith("cashier"), permission.SubjectTransactions, permission.ActionDelete))
	require.True(t, permission.HasPermission(sessionWith("cashier"), permission.SubjectTransactions, permission.ActionCreate))
}

func TestHasPagePermission(t *testing.T) {
	t.Parallel()

	require.False(t, permission.HasPagePermission(nil, permission.SubjectMovies))
	require.False(t, permission.HasPagePermission(sessionWith("unknown"), permission.SubjectMovies))
	require.True(t, permission.HasPagePermission(sessionWith("cashier"), permission.SubjectEvents))
	require.False(t, permission.HasPagePermission(sessionWith("cashier"), permission.SubjectTemplates))
	require.True(t, permission.HasPagePermission(sessionWith("content_manager"), permission.SubjectMedia))
}

func TestMatrix_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, permission.Roles().Validate(permission.Subjects))

	missingSubject := permission.Matrix{
		permission.RoleAdmin: {
			permission.SubjectMovies: {permission.ActionCreate: true, permission.ActionRead: true, permission.ActionUpdate: true, permission.ActionDelete: true},
		},
	}
	err := missingSubject.Validate([]permission.Subject{permission.SubjectMovies, permission.SubjectGenres})
	require.ErrorIs(t, err, permission.ErrIncompleteMatrix)

	missingAction := permission.Matrix{
		permission.RoleAdmin: {
			permission.SubjectMovies: {permission.ActionRead: true},
		},
	}
	err = missingAction.Validate([]permission.Subject{permission.SubjectMovies})
	require.ErrorIs(t, err, permission.ErrIncompleteMatrix)
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := map[string]permission.Action{
		http.MethodGet:    permission.ActionRead,
		http.MethodHead:   permission.ActionRead,
		http.MethodPost:   permission.ActionCreate,
		http.MethodPut:    permission.ActionUpdate,
		http.MethodPatch:  permission.ActionUpdate,
		http.MethodDelete: permission.ActionDelete,
	}
	for method, want := range tests {
		got, ok := permission.ParseAction(method)
		require.True(t, ok, method)
		require.Equal(t, want, got)
	}

	_, ok := permission.ParseAction(http.MethodOptions)
	require.False(t, ok)
}
