// Package me возвращает профиль текущей сессии.
package me

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/view"
)

// Handler отдаёт профиль сессии.
type Handler struct {
	log *slog.Logger
	now func() time.Time
}

// New создает Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log, now: time.Now}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Description Профиль сессии и статус подписки.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=view.Profile}
// @Failure 401 {object} response.ErrorResponse
// @Router /me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	render.JSON(w, r, response.OKWithData(view.NewProfile(sess, h.now())))
}
