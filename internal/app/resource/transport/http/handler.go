package http

import (
	"context"
	"net/http"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/resource"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/httpx"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
	"github.com/go-chi/chi/v5"
)

const (
	URLParamResource = "resource"
	URLParamID       = "id"
)

type Service interface {
	Visible(sess *auth.Session) []resource.Resource
	Forward(ctx context.Context, sess *auth.Session, call resource.Call) (backend.Response, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	if svc == nil {
		panic("nil resource Service")
	}
	return &Handler{svc: svc}
}

// Routes mounts the proxy under the current router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListResources)
	r.Route("/{"+URLParamResource+"}", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{"+URLParamID+"}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Patch("/", h.Update)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
		})
	})
}

// ListResources godoc
// @Summary      Available resources
// @Description  Lists the resource types the current user may open
// @Tags         resources
// @Produce      json
// @Success      200 {array} resource.Resource
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/resources [get]
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := auth.FromContext(ctx)

	visible := h.svc.Visible(sess)
	if visible == nil {
		visible = []resource.Resource{}
	}
	httpx.WriteJSON(ctx, w, http.StatusOK, visible)
}

// List godoc
// @Summary      List resource items
// @Description  Proxies the backend list endpoint; query parameters are forwarded
// @Tags         resources
// @Produce      json
// @Param        resource path string true "Resource name"
// @Success      200 {object} object
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/resources/{resource} [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, resource.Call{Query: r.URL.Query()})
}

// Get godoc
// @Summary      Get resource item
// @Tags         resources
// @Produce      json
// @Param        resource path string true "Resource name"
// @Param        id path string true "Item ID"
// @Success      200 {object} object
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/resources/{resource}/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, resource.Call{ID: chi.URLParam(r, URLParamID)})
}

// Create godoc
// @Summary      Create resource item
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource path string true "Resource name"
// @Param        request body object true "Item payload"
// @Success      201 {object} object
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/resources/{resource} [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	h.forwardWithBody(w, r, resource.Call{})
}

// Update godoc
// @Summary      Update resource item
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource path string true "Resource name"
// @Param        id path string true "Item ID"
// @Param        request body object true "Partial item payload"
// @Success      200 {object} object
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/resources/{resource}/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	h.forwardWithBody(w, r, resource.Call{ID: chi.URLParam(r, URLParamID)})
}

// Delete godoc
// @Summary      Delete resource item
// @Tags         resources
// @Param        resource path string true "Resource name"
// @Param        id path string true "Item ID"
// @Success      204 "No Content"
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/resources/{resource}/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, resource.Call{ID: chi.URLParam(r, URLParamID)})
}

func (h *Handler) forwardWithBody(w http.ResponseWriter, r *http.Request, call resource.Call) {
	ctx := r.Context()

	body, err := httpx.ReadJSONBody(r)
	if err != nil {
		logger.Error(ctx, err).Msg("resource.Handler.forwardWithBody: invalid body")
		httpx.ReturnError(ctx, w, err)
		return
	}
	call.Body = body

	h.forward(w, r, call)
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request, call resource.Call) {
	ctx := r.Context()

	sess, ok := auth.FromContext(ctx)
	if !ok {
		httpx.ReturnError(ctx, w, apperr.ErrUnauthorized())
		return
	}
	call.Resource = chi.URLParam(r, URLParamResource)
	call.Method = r.Method

	resp, err := h.svc.Forward(ctx, sess, call)
	if err != nil {
		logBackendError(ctx, call, err)
		httpx.ReturnBackendError(ctx, w, err)
		return
	}

	if resp.Status == http.StatusNoContent || len(resp.Body) == 0 {
		w.WriteHeader(resp.Status)
		return
	}
	httpx.WriteRawJSON(ctx, w, resp.Status, resp.Body)
}

func logBackendError(ctx context.Context, call resource.Call, err error) {
	status := backend.StatusOf(err)
	if status > 0 && status < http.StatusInternalServerError {
		logger.Warn(ctx, err).
			Str(resource.FieldResource.String(), call.Resource).
			Int("status", status).
			Msg("resource.Handler.forward: backend rejected")
		return
	}
	if status > 0 || apperr.ClassOf(err) == apperr.ClassInternal {
		logger.Error(ctx, err).
			Str(resource.FieldResource.String(), call.Resource).
			Msg("resource.Handler.forward")
	}
}
