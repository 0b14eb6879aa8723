// Package notifications выгружает локальный журнал уведомлений в CSV.
package notifications

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
)

// Exporter источник CSV.
type Exporter interface {
	Export(ctx context.Context, w io.Writer) error
}

// Handler выгрузка журнала.
type Handler struct {
	log      *slog.Logger
	exporter Exporter
}

// New создает Handler.
func New(log *slog.Logger, exporter Exporter) *Handler {
	return &Handler{log: log, exporter: exporter}
}

// ServeHTTP godoc
// @Summary Журнал уведомлений
// @Description CSV с колонками Type,Name,Email,Phone,Details,Timestamp. Только для администратора.
// @Tags Admin
// @Produce  text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV"
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /admin/notifications.csv [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.notifications"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var buf bytes.Buffer
	if err := h.exporter.Export(r.Context(), &buf); err != nil {
		log.Error("failed to export notifications", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="notifications.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("failed to write csv", sl.Err(err))
	}
}
