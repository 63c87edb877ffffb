package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/menu"
	menuhttp "github.com/66gu1/filmoradmin/internal/app/menu/transport/http"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetMenu(t *testing.T) {
	t.Parallel()

	m, err := menu.Load([]byte("- title: Home\n  url: /\n  permissions: []\n- title: Halls\n  url: /halls\n  permissions: [view_hall]\n"))
	require.NoError(t, err)
	h := menuhttp.NewHandler(m)

	t.Run("no session", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.GetMenu(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("filtered", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
		req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{User: auth.User{ID: "1"}}))
		rec := httptest.NewRecorder()
		h.GetMenu(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var items []menu.Item
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		require.Equal(t, "Home", items[0].Title)
	})

	require.Panics(t, func() { menuhttp.NewHandler(nil) })
}
