package resource

import (
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/permission"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	names := make(map[string]struct{})
	for _, res := range reg.All() {
		_, dup := names[res.Name]
		require.False(t, dup, res.Name)
		names[res.Name] = struct{}{}
		require.NotEmpty(t, res.BackendPath, res.Name)
		if res.Family == FamilyFlatList {
			require.NotEmpty(t, res.Noun, res.Name)
		}
	}

	for _, subject := range permission.Subjects {
		res, ok := reg.Lookup(string(subject))
		require.True(t, ok, subject)
		require.Equal(t, FamilyMatrix, res.Family)
	}

	reports, ok := reg.Lookup("reports")
	require.True(t, ok)
	require.True(t, reports.ReadOnly)

	_, ok = reg.Lookup("nope")
	require.False(t, ok)
}

func TestRegistry_Policy(t *testing.T) {
	t.Parallel()

	policy := DefaultRegistry().Policy()

	tests := []struct {
		name    string
		session *auth.Session
		subject permission.Subject
		action  permission.Action
		want    bool
	}{
		{
			name:    "flat permission string grants",
			session: &auth.Session{User: auth.User{Permissions: []string{"create_branch"}}},
			subject: "branches",
			action:  permission.ActionCreate,
			want:    true,
		},
		{
			name:    "read maps to view",
			session: &auth.Session{User: auth.User{Permissions: []string{"view_role_permission"}}},
			subject: "role-permissions",
			action:  permission.ActionRead,
			want:    true,
		},
		{
			name:    "flat list ignores role",
			session: &auth.Session{User: auth.User{Role: "superadmin"}},
			subject: "branches",
			action:  permission.ActionRead,
			want:    false,
		},
		{
			name:    "matrix uses role",
			session: &auth.Session{User: auth.User{Role: "content_manager"}},
			subject: permission.SubjectMovies,
			action:  permission.ActionUpdate,
			want:    true,
		},
		{
			name:    "matrix ignores permission strings",
			session: &auth.Session{User: auth.User{Role: "cashier", Permissions: []string{"delete_movies"}}},
			subject: permission.SubjectMovies,
			action:  permission.ActionDelete,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, policy.Can(tt.session, tt.subject, tt.action))
		})
	}
}
