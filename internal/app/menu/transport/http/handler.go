package http

import (
	"net/http"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/menu"
	"github.com/66gu1/filmoradmin/internal/infrastructure/apperr"
	"github.com/66gu1/filmoradmin/internal/infrastructure/httpx"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
)

type Menu interface {
	Visible(s *auth.Session) []menu.Item
}

type Handler struct {
	menu Menu
}

func NewHandler(m Menu) *Handler {
	if m == nil {
		panic("nil Menu")
	}
	return &Handler{menu: m}
}

// GetMenu godoc
// @Summary      Navigation menu
// @Description  Returns the navigation tree filtered by the current user's permissions
// @Tags         menu
// @Produce      json
// @Success      200 {array} menu.Item
// @Failure      default {object} apperr.appError "Error"
// @Router       /api/menu [get]
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, ok := auth.FromContext(ctx)
	if !ok {
		err := apperr.ErrUnauthorized().WithDetail("no session in context")
		logger.Error(ctx, err).Msg("menu.Handler.GetMenu")
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, h.menu.Visible(s))
}
