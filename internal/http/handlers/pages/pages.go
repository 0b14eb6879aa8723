// Package pages решает, показывать ли страницу сайта или отправить гостя
// на страницу входа.
package pages

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/models"
	"github.com/magabrotheeeer/course-portal/internal/view"
)

// Data решение по странице и, для вошедшего пользователя, блок подписки.
type Data struct {
	Page     view.Page     `json:"page"`
	Decision view.Decision `json:"decision"`
	Status   *view.Status  `json:"status,omitempty"`
}

// Handler проверка доступа к странице.
type Handler struct {
	log *slog.Logger
	now func() time.Time
}

// New создает Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log, now: time.Now}
}

// ServeHTTP godoc
// @Summary Доступ к странице
// @Description Защищённые страницы learning и subscription требуют входа.
// @Tags Pages
// @Produce  json
// @Param page path string true "Страница"
// @Success 200 {object} response.Response{data=Data}
// @Router /pages/{page} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := view.Page(chi.URLParam(r, "page"))

	var sessPtr *models.Session
	if sess, ok := middlewarectx.SessionFrom(r.Context()); ok {
		sessPtr = &sess
	}

	data := Data{Page: page, Decision: view.Access(page, sessPtr)}
	if sessPtr != nil {
		st := view.Display(*sessPtr, h.now())
		data.Status = &st
	}
	if data.Decision.Redirect != "" {
		h.log.Debug("guest redirected", slog.String("page", string(page)))
	}
	render.JSON(w, r, response.OKWithData(data))
}
