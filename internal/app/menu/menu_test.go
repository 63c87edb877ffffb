package menu_test

import (
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/menu"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const testMenu = `
- title: Home
  url: /
  permissions: []
- title: Org
  children:
    - title: Branches
      url: /branches/
      permissions: [view_branch, view_branch]
    - title: Halls
      url: halls
      permissions: [view_hall]
- title: Events
  url: /events
  permissions: [view_event]
  children:
    - title: Schedule
      url: /events/schedule?tab=week
      permissions: [create_event_schedule]
`

func titles(items []menu.Item) []string {
	return lo.Map(items, func(i menu.Item, _ int) string { return i.Title })
}

func TestLoad(t *testing.T) {
	t.Parallel()

	m, err := menu.Load([]byte(testMenu))
	require.NoError(t, err)
	require.Len(t, m.Items(), 3)

	require.Equal(t, menu.RouteMap{
		"/":                {},
		"/branches":        {"view_branch"},
		"/halls":           {"view_hall"},
		"/events":          {"view_event"},
		"/events/schedule": {"create_event_schedule"},
	}, m.Routes())
	require.Equal(t, []string{"/", "/branches", "/events", "/events/schedule", "/halls"}, m.Routes().Paths())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := menu.Load([]byte("title: [unterminated"))
	require.Error(t, err)

	_, err = menu.Load([]byte("- title: A\n  url: /a\n- title: B\n  url: /a/\n"))
	require.ErrorContains(t, err, "duplicate menu route")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	m, err := menu.Default()
	require.NoError(t, err)

	for _, p := range m.Routes().Paths() {
		perms, ok := m.Routes().Lookup(p)
		require.True(t, ok, p)
		require.NotNil(t, perms, p)
	}

	perms, ok := m.Routes().Lookup("/branches/12/edit")
	require.True(t, ok)
	require.Equal(t, []string{"view_branch"}, perms)
}

func TestRouteMap_Lookup(t *testing.T) {
	t.Parallel()

	m, err := menu.Load([]byte(testMenu))
	require.NoError(t, err)
	routes := m.Routes()

	tests := []struct {
		path   string
		want   []string
		wantOK bool
	}{
		{path: "/", want: []string{}, wantOK: true},
		{path: "/branches", want: []string{"view_branch"}, wantOK: true},
		{path: "/branches/", want: []string{"view_branch"}, wantOK: true},
		{path: "/branches/7/edit?x=1", want: []string{"view_branch"}, wantOK: true},
		{path: "/events/schedule/3", want: []string{"create_event_schedule"}, wantOK: true},
		{path: "/events/9", want: []string{"view_event"}, wantOK: true},
		{path: "/unknown", wantOK: false},
		{path: "/unknown/deep/path", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, ok := routes.Lookup(tt.path)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", menu.NormalizePath(""))
	require.Equal(t, "/", menu.NormalizePath("/"))
	require.Equal(t, "/a", menu.NormalizePath("a/"))
	require.Equal(t, "/a/b", menu.NormalizePath("/a//b/./"))
	require.Equal(t, "/a", menu.NormalizePath("/a?b=c#d"))
}

func TestMenu_Visible(t *testing.T) {
	t.Parallel()

	m, err := menu.Load([]byte(testMenu))
	require.NoError(t, err)

	require.Empty(t, m.Visible(nil))

	bare := &auth.Session{User: auth.User{ID: "1"}}
	require.Equal(t, []string{"Home"}, titles(m.Visible(bare)))

	halls := &auth.Session{User: auth.User{ID: "1", Permissions: []string{"view_hall", "view_event"}}}
	got := m.Visible(halls)
	require.Equal(t, []string{"Home", "Org", "Events"}, titles(got))
	require.Equal(t, []string{"Halls"}, titles(got[1].Children))
	require.Empty(t, got[2].Children)

	// the source tree is left untouched
	require.Len(t, m.Items()[1].Children, 2)
}
