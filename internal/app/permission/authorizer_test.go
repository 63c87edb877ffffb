package permission_test

import (
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/permission"
	"github.com/stretchr/testify/require"
)

const subjectBranches permission.Subject = "branches"

func TestFlatList(t *testing.T) {
	t.Parallel()

	flat := permission.NewFlatList(map[permission.Subject]string{subjectBranches: "branch"})

	name, ok := flat.PermissionName(subjectBranches, permission.ActionRead)
	require.True(t, ok)
	require.Equal(t, "view_branch", name)
	name, ok = flat.PermissionName(subjectBranches, permission.ActionDelete)
	require.True(t, ok)
	require.Equal(t, "delete_branch", name)
	_, ok = flat.PermissionName("halls", permission.ActionRead)
	require.False(t, ok)

	s := sessionWith("", "create_branch", "update_branch")
	require.True(t, flat.Can(s, subjectBranches, permission.ActionCreate))
	require.False(t, flat.Can(s, subjectBranches, permission.ActionDelete))
	require.False(t, flat.Can(nil, subjectBranches, permission.ActionCreate))
	require.False(t, flat.Can(s, "halls", permission.ActionCreate))
	require.True(t, flat.CanView(s, subjectBranches))
	require.False(t, flat.CanView(sessionWith("admin"), subjectBranches))
}

func TestMatrixAuthorizer(t *testing.T) {
	t.Parallel()

	m := permission.NewMatrix(nil)
	require.True(t, m.Can(sessionWith("admin"), permission.SubjectMovies, permission.ActionCreate))
	require.False(t, m.Can(sessionWith("admin"), permission.SubjectReports, permission.ActionCreate))
	require.False(t, m.Can(nil, permission.SubjectMovies, permission.ActionRead))
	require.True(t, m.CanView(sessionWith("admin"), permission.SubjectReports))
	require.False(t, m.CanView(sessionWith("cashier"), permission.SubjectMedia))

	custom := permission.NewMatrix(permission.Matrix{
		"auditor": {permission.SubjectReports: {permission.ActionRead: true}},
	})
	require.True(t, custom.Can(sessionWith("auditor"), permission.SubjectReports, permission.ActionRead))
	require.False(t, custom.Can(sessionWith("admin"), permission.SubjectReports, permission.ActionRead))
}

func TestPolicy(t *testing.T) {
	t.Parallel()

	flat := permission.NewFlatList(map[permission.Subject]string{subjectBranches: "branch"})
	policy := permission.NewPolicy().
		Use(flat, subjectBranches).
		Use(permission.NewMatrix(nil), permission.SubjectMovies, permission.SubjectReports)

	var _ permission.Authorizer = policy

	strategy, ok := policy.Strategy(subjectBranches)
	require.True(t, ok)
	require.Same(t, flat, strategy)
	_, ok = policy.Strategy("halls")
	require.False(t, ok)

	admin := sessionWith("admin", "view_branch")
	require.True(t, policy.Can(admin, subjectBranches, permission.ActionRead))
	require.False(t, policy.Can(admin, subjectBranches, permission.ActionCreate))
	require.True(t, policy.Can(admin, permission.SubjectMovies, permission.ActionCreate))
	require.False(t, policy.Can(admin, "halls", permission.ActionRead))
	require.True(t, policy.CanView(admin, permission.SubjectReports))
	require.False(t, policy.CanView(admin, "halls"))
	require.False(t, policy.CanView(nil, permission.SubjectMovies))
}
