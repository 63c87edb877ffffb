package http

import (
	"context"
	"embed"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/auth/usecase"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/httpx"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
	"github.com/go-chi/chi/v5"
)

const (
	LoginPath  = "/login"
	LogoutPath = "/logout"
	HomePath   = "/"
	APIPrefix  = "/api/auth"

	formUsername = "username"
	formPassword = "password"
)

//go:embed templates/login.gohtml
var templatesFS embed.FS

var loginTemplate = template.Must(template.ParseFS(templatesFS, "templates/login.gohtml"))

type AuthService interface {
	Login(ctx context.Context, req usecase.LoginCmd) (*auth.Session, error)
	Resolve(ctx context.Context, session *auth.Session) (*auth.Session, auth.Transition)
	UpdateSession(ctx context.Context, session *auth.Session, update auth.Update) (*auth.Session, auth.Transition, error)
}

// SessionStore persists the session between requests, usually in a cookie.
type SessionStore interface {
	Load(r *http.Request) (*auth.Session, error)
	Save(ctx context.Context, w http.ResponseWriter, s *auth.Session) error
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionOutput is what the browser may see of a session. Tokens stay server-side.
type SessionOutput struct {
	User      auth.User      `json:"user"`
	ExpiresAt time.Time      `json:"expires_at"`
	Error     auth.ErrorCode `json:"error,omitempty"`
}

func toOutput(s *auth.Session) SessionOutput {
	return SessionOutput{User: s.User, ExpiresAt: s.ExpiresAt, Error: s.Error}
}

type loginPage struct {
	CallbackURL string
	Username    string
	Error       string
}

type Handler struct {
	svc   AuthService
	store SessionStore
}

func NewHandler(svc AuthService, store SessionStore) *Handler {
	if svc == nil || store == nil {
		panic("nil AuthService or SessionStore")
	}
	return &Handler{svc: svc, store: store}
}

// Routes mounts the sign-in pages and the session api. Logout answers GET as well so that a
// plain link signs the user out.
func (h *Handler) Routes(r chi.Router) {
	r.Get(LoginPath, h.LoginPage)
	r.Post(LoginPath, h.LoginForm)
	r.Get(LogoutPath, h.Logout)
	r.Post(LogoutPath, h.Logout)
	r.Route(APIPrefix, func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Get("/session", h.GetSession)
		r.Patch("/session", h.UpdateSession)
	})
}

// LoginPage godoc
// @Summary      Sign-in page
// @Tags         auth
// @Produce      html
// @Param        callback_url query string false "Where to go after signing in"
// @Success      200 "HTML page"
// @Router       /login [get]
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, loginPage{
		CallbackURL: httpx.SafeCallback(r.URL.Query().Get(httpx.QueryCallbackURL), HomePath),
	})
}

// LoginForm godoc
// @Summary      Sign in with the login form
// @Description  Exchanges credentials with the backend, stores the session cookie and redirects to callback_url
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username formData string true "Username"
// @Param        password formData string true "Password"
// @Param        callback_url formData string false "Local path to return to"
// @Success      302 "Redirect"
// @Failure      401 "HTML page with the error"
// @Router       /login [post]
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		logger.Warn(ctx, err).Msg("auth.Handler.LoginForm: parse form failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}
	callback := httpx.SafeCallback(r.PostForm.Get(httpx.QueryCallbackURL), HomePath)
	username := r.PostForm.Get(formUsername)

	session, err := h.svc.Login(ctx, usecase.LoginCmd{
		Username: username,
		Password: []byte(r.PostForm.Get(formPassword)),
		IP:       clientIP(r),
	})
	if err != nil {
		status := http.StatusUnauthorized
		if apperr.ClassOf(err) == apperr.ClassTooManyRequests {
			status = http.StatusTooManyRequests
		}
		h.renderLogin(w, r, status, loginPage{
			CallbackURL: callback,
			Username:    username,
			Error:       apperr.FromError(err).Message,
		})
		return
	}

	if err = h.store.Save(ctx, w, session); err != nil {
		logger.Error(ctx, err).
			Str(auth.FieldUserID.String(), session.User.ID).
			Msg("auth.Handler.LoginForm.store.Save")
		httpx.ReturnError(ctx, w, err)
		return
	}

	http.Redirect(w, r, callback, http.StatusFound)
}

// Login godoc
// @Summary      Sign in
// @Description  JSON variant of the login form for API clients
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginInput true "credentials"
// @Success      200 {object} SessionOutput
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input LoginInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		logger.Warn(ctx, err).Msg("auth.Handler.Login: request json decode failed")
		httpx.ReturnError(ctx, w, err)
		return
	}

	session, err := h.svc.Login(ctx, usecase.LoginCmd{
		Username: input.Username,
		Password: []byte(input.Password),
		IP:       clientIP(r),
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	if err = h.store.Save(ctx, w, session); err != nil {
		logger.Error(ctx, err).
			Str(auth.FieldUserID.String(), session.User.ID).
			Msg("auth.Handler.Login.store.Save")
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, toOutput(session))
}

// Logout godoc
// @Summary      Sign out
// @Description  Destroys the session and redirects to the login page
// @Tags         auth
// @Success      302 "Redirect"
// @Router       /logout [get]
// @Router       /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.Clear(ctx, w, r); err != nil {
		logger.Error(ctx, err).Msg("auth.Handler.Logout.store.Clear")
	}
	if session, ok := auth.FromContext(ctx); ok {
		logger.Info(ctx).
			Str(auth.FieldUserID.String(), session.User.ID).
			Msg("auth.Handler.Logout: signed out")
	}

	http.Redirect(w, r, LoginPath, http.StatusFound)
}

// GetSession godoc
// @Summary      Current session
// @Description  Returns the signed-in user. Tokens are never exposed.
// @Tags         auth
// @Produce      json
// @Success      200 {object} SessionOutput
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/auth/session [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := auth.FromContext(ctx)
	if !ok {
		httpx.ReturnError(ctx, w, apperr.ErrUnauthorized())
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, toOutput(session))
}

// UpdateSession godoc
// @Summary      Update session
// @Description  Switches the active company of the signed-in user. Absent fields are left as they are.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body auth.Update true "update"
// @Success      200 {object} SessionOutput
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/auth/session [patch]
func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var update auth.Update
	if err := httpx.DecodeJSON(r, &update); err != nil {
		logger.Warn(ctx, err).Msg("auth.Handler.UpdateSession: request json decode failed")
		httpx.ReturnError(ctx, w, err)
		return
	}

	current, _ := auth.FromContext(ctx)
	session, transition, err := h.svc.UpdateSession(ctx, current, update)
	if err != nil {
		if transition == auth.TransitionSignedOut {
			if clearErr := h.store.Clear(ctx, w, r); clearErr != nil {
				logger.Error(ctx, clearErr).Msg("auth.Handler.UpdateSession.store.Clear")
			}
		}
		httpx.ReturnError(ctx, w, err)
		return
	}

	if transition.Changed() {
		if err = h.store.Save(ctx, w, session); err != nil {
			logger.Error(ctx, err).
				Str(auth.FieldUserID.String(), session.User.ID).
				Msg("auth.Handler.UpdateSession.store.Save")
			httpx.ReturnError(ctx, w, err)
			return
		}
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, toOutput(session))
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, page loginPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := loginTemplate.Execute(w, page); err != nil {
		logger.Error(r.Context(), err).Msg("auth.Handler.renderLogin: template execute failed")
	}
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
