package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/resource"
	resourcehttp "github.com/66gu1/filmoradmin/internal/app/resource/transport/http"
	"github.com/66gu1/filmoradmin/internal/app/resource/transport/http/mocks"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"
)

//go:generate minimock -o ./mocks -s _mock.go

func session() *auth.Session {
	return &auth.Session{User: auth.User{ID: "1"}, AccessToken: "a"}
}

func newRouter(svc resourcehttp.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/resources", resourcehttp.NewHandler(svc).Routes)
	return r
}

func withSession(req *http.Request) *http.Request {
	return req.WithContext(auth.WithSession(req.Context(), session()))
}

func TestHandler_Forward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		resp       backend.Response
		err        error
		wantStatus int
		wantBody   string
		wantCall   resource.Call
	}{
		{
			name:       "list forwards query",
			method:     http.MethodGet,
			target:     "/api/resources/branches?page=2",
			resp:       backend.Response{Status: http.StatusOK, Body: []byte(`{"results":[]}`)},
			wantStatus: http.StatusOK,
			wantBody:   `{"results":[]}`,
			wantCall:   resource.Call{Resource: "branches", Method: http.MethodGet, Query: url.Values{"page": {"2"}}},
		},
		{
			name:       "get by id",
			method:     http.MethodGet,
			target:     "/api/resources/movies/12",
			resp:       backend.Response{Status: http.StatusOK, Body: []byte(`{"id":12}`)},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":12}`,
			wantCall:   resource.Call{Resource: "movies", ID: "12", Method: http.MethodGet},
		},
		{
			name:       "create passes body",
			method:     http.MethodPost,
			target:     "/api/resources/genres",
			body:       `{"name":"drama"}`,
			resp:       backend.Response{Status: http.StatusCreated, Body: []byte(`{"id":1}`)},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":1}`,
			wantCall:   resource.Call{Resource: "genres", Method: http.MethodPost, Body: []byte(`{"name":"drama"}`)},
		},
		{
			name:       "delete without content",
			method:     http.MethodDelete,
			target:     "/api/resources/genres/3",
			resp:       backend.Response{Status: http.StatusNoContent},
			wantStatus: http.StatusNoContent,
			wantCall:   resource.Call{Resource: "genres", ID: "3", Method: http.MethodDelete},
		},
		{
			name:       "denied reads as not found",
			method:     http.MethodPatch,
			target:     "/api/resources/genres/3",
			body:       `{}`,
			err:        apperr.ErrNotFound(),
			wantStatus: http.StatusNotFound,
			wantCall:   resource.Call{Resource: "genres", ID: "3", Method: http.MethodPatch, Body: []byte(`{}`)},
		},
		{
			name:       "backend validation error keeps status",
			method:     http.MethodPut,
			target:     "/api/resources/halls/9",
			body:       `{"name":""}`,
			err:        &backend.Error{Operation: "proxy", Status: http.StatusBadRequest, Message: "name: required"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"message":"name: required","code":"core/backend_rejected"}}`,
			wantCall:   resource.Call{Resource: "halls", ID: "9", Method: http.MethodPut, Body: []byte(`{"name":""}`)},
		},
		{
			name:       "backend conflict keeps status",
			method:     http.MethodDelete,
			target:     "/api/resources/halls/9",
			err:        fmt.Errorf("resource.Service.Forward: %w", &backend.Error{Operation: "proxy", Status: http.StatusConflict, Message: "hall has sessions"}),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"message":"hall has sessions","code":"core/backend_rejected"}}`,
			wantCall:   resource.Call{Resource: "halls", ID: "9", Method: http.MethodDelete},
		},
		{
			name:       "backend failure is bad gateway",
			method:     http.MethodGet,
			target:     "/api/resources/halls/9",
			err:        &backend.Error{Operation: "proxy", Status: http.StatusServiceUnavailable, Message: "down"},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":{"message":"Backend unavailable","code":"core/backend_unavailable"}}`,
			wantCall:   resource.Call{Resource: "halls", ID: "9", Method: http.MethodGet},
		},
		{
			name:       "transport failure is bad gateway",
			method:     http.MethodGet,
			target:     "/api/resources/halls",
			err:        errors.New("dial tcp: refused"),
			wantStatus: http.StatusBadGateway,
			wantCall:   resource.Call{Resource: "halls", Method: http.MethodGet, Query: url.Values{}},
		},
		{
			name:       "oversized backend answer is bad gateway",
			method:     http.MethodGet,
			target:     "/api/resources/halls",
			err:        fmt.Errorf("backend.Client.Do: %w", backend.ErrResponseTooLarge),
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":{"message":"Backend unavailable","code":"core/backend_unavailable"}}`,
			wantCall:   resource.Call{Resource: "halls", Method: http.MethodGet, Query: url.Values{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewServiceMock(t)
			svc.ForwardMock.Expect(minimock.AnyContext, session(), tt.wantCall).Return(tt.resp, tt.err)
			req := withSession(httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				require.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_ListQuery(t *testing.T) {
	t.Parallel()

	svc := mocks.NewServiceMock(t)
	svc.ForwardMock.Set(func(_ context.Context, _ *auth.Session, call resource.Call) (backend.Response, error) {
		require.Equal(t, "2", call.Query.Get("page"))
		require.Equal(t, "x", call.Query.Get("search"))
		return backend.Response{Status: http.StatusOK, Body: []byte(`[]`)}, nil
	})
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/resources/branches?page=2&search=x", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_RejectsBadBody(t *testing.T) {
	t.Parallel()

	svc := mocks.NewServiceMock(t)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/resources/genres", strings.NewReader(`{"name":`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, svc.ForwardAfterCounter())
}

func TestHandler_RequiresSession(t *testing.T) {
	t.Parallel()

	svc := mocks.NewServiceMock(t)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resources/genres", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, svc.ForwardAfterCounter())
}

func TestHandler_ListResources(t *testing.T) {
	t.Parallel()

	svc := mocks.NewServiceMock(t)
	svc.VisibleMock.Expect(session()).Return([]resource.Resource{{Name: "movies", Subject: "movies"}})
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/resources", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "movies", got[0]["name"])

	empty := mocks.NewServiceMock(t)
	empty.VisibleMock.Return(nil)
	rec = httptest.NewRecorder()
	newRouter(empty).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/resources", nil)))
	require.JSONEq(t, `[]`, rec.Body.String())
}
