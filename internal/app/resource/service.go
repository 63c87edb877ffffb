package resource

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/permission"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
	"github.com/zeebo/blake3"
)

const (
	FieldResource apperr.Field = "resource"
	FieldID       apperr.Field = "id"
	FieldMethod   apperr.Field = "method"
)

type Backend interface {
	Do(ctx context.Context, token string, req backend.Request) (backend.Response, error)
}

// Cache keeps read responses grouped under a tag so that a mutation can drop them all.
type Cache interface {
	Get(ctx context.Context, tag, key string) ([]byte, bool, error)
	Set(ctx context.Context, tag, key string, body []byte) error
	Invalidate(ctx context.Context, tag string) error
}

type Call struct {
	Resource string
	ID       string
	Method   string
	Query    url.Values
	Body     []byte
}

type Service struct {
	backend  Backend
	authz    permission.Authorizer
	cache    Cache
	registry *Registry
}

// NewService wires the proxy; cache may be nil.
func NewService(b Backend, authz permission.Authorizer, cache Cache, registry *Registry) *Service {
	if b == nil || authz == nil || registry == nil {
		panic("resource.Service: nil dependency")
	}
	return &Service{backend: b, authz: authz, cache: cache, registry: registry}
}

// Visible lists the resources the session may open.
func (s *Service) Visible(sess *auth.Session) []Resource {
	var out []Resource
	for _, res := range s.registry.All() {
		if s.authz.CanView(sess, res.Subject) {
			out = append(out, res)
		}
	}
	return out
}

// Forward checks the session against the resource's policy and relays the call to the backend.
// Unknown resources and denied actions both read as not found.
func (s *Service) Forward(ctx context.Context, sess *auth.Session, call Call) (backend.Response, error) {
	if sess == nil {
		return backend.Response{}, fmt.Errorf("resource.Service.Forward: %w", apperr.ErrUnauthorized())
	}

	res, ok := s.registry.Lookup(call.Resource)
	if !ok {
		err := apperr.ErrNotFound().WithDetail("unknown resource")
		logger.Warn(ctx, err).Str(FieldResource.String(), call.Resource).Msg("resource.Service.Forward")
		return backend.Response{}, fmt.Errorf("resource.Service.Forward: %w", err)
	}

	action, ok := permission.ParseAction(call.Method)
	if !ok || (res.ReadOnly && action != permission.ActionRead) {
		err := apperr.ErrNotFound().WithDetail("unsupported method")
		logger.Warn(ctx, err).
			Str(FieldResource.String(), call.Resource).
			Str(FieldMethod.String(), call.Method).
			Msg("resource.Service.Forward")
		return backend.Response{}, fmt.Errorf("resource.Service.Forward: %w", err)
	}

	if !s.authz.Can(sess, res.Subject, action) {
		err := apperr.ErrNotFound().WithDetail("action not permitted")
		logger.Warn(ctx, err).
			Str(FieldResource.String(), call.Resource).
			Str(FieldMethod.String(), call.Method).
			Msg("resource.Service.Forward")
		return backend.Response{}, fmt.Errorf("resource.Service.Forward: %w", err)
	}

	req := backend.Request{
		Method: call.Method,
		Path:   backendPath(res, call.ID),
		Query:  call.Query,
		Body:   call.Body,
	}

	if action == permission.ActionRead {
		return s.read(ctx, sess.AccessToken, res, req)
	}

	resp, err := s.backend.Do(ctx, sess.AccessToken, req)
	if err != nil {
		return backend.Response{}, fmt.Errorf("resource.Service.Forward: %w", err)
	}
	s.invalidate(ctx, res)

	return resp, nil
}

func (s *Service) read(ctx context.Context, token string, res Resource, req backend.Request) (backend.Response, error) {
	if s.cache == nil {
		resp, err := s.backend.Do(ctx, token, req)
		if err != nil {
			return backend.Response{}, fmt.Errorf("resource.Service.read: %w", err)
		}
		return resp, nil
	}

	key := cacheKey(token, req)
	body, hit, err := s.cache.Get(ctx, res.Name, key)
	if err != nil {
		logger.Warn(ctx, err).Str(FieldResource.String(), res.Name).Msg("resource.Service.read.cache.Get")
	}
	if hit {
		return backend.Response{Status: http.StatusOK, Body: body}, nil
	}

	resp, err := s.backend.Do(ctx, token, req)
	if err != nil {
		return backend.Response{}, fmt.Errorf("resource.Service.read: %w", err)
	}
	if resp.Status == http.StatusOK {
		if err = s.cache.Set(ctx, res.Name, key, resp.Body); err != nil {
			logger.Warn(ctx, err).Str(FieldResource.String(), res.Name).Msg("resource.Service.read.cache.Set")
		}
	}

	return resp, nil
}

func (s *Service) invalidate(ctx context.Context, res Resource) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, res.Name); err != nil {
		logger.Warn(ctx, err).Str(FieldResource.String(), res.Name).Msg("resource.Service.invalidate")
	}
}

func backendPath(res Resource, id string) string {
	if id == "" {
		return res.BackendPath
	}
	return strings.TrimRight(res.BackendPath, "/") + "/" + url.PathEscape(id)
}

// cacheKey scopes cached reads to the access token so users never see each other's results.
func cacheKey(token string, req backend.Request) string {
	h := blake3.New()
	_, _ = h.Write([]byte(token))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(req.Method))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(req.Path))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(url.Values(req.Query).Encode()))
	return hex.EncodeToString(h.Sum(nil))
}
