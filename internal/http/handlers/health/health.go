// Package health отвечает на проверки живости сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-portal/internal/http/response"
	"github.com/magabrotheeeer/course-portal/internal/lib/sl"
)

// Check проверка одной зависимости.
type Check func(ctx context.Context) error

// Data состояние зависимостей: "ok" или "unavailable".
type Data struct {
	Checks map[string]string `json:"checks"`
}

// Handler проверка живости.
type Handler struct {
	log     *slog.Logger
	checks  map[string]Check
	timeout time.Duration
}

// New создает Handler.
func New(log *slog.Logger, checks map[string]Check) *Handler {
	return &Handler{log: log, checks: checks, timeout: 2 * time.Second}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Description Недоступная база не делает сервис неработоспособным: вход и регистрация переходят на локальное хранилище.
// @Tags Health
// @Produce  json
// @Success 200 {object} response.Response{data=Data}
// @Failure 503 {object} response.Response{data=Data} "Redis недоступен"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	data := Data{Checks: make(map[string]string, len(names))}
	code := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.log.Warn("dependency unavailable", slog.String("op", op), slog.String("dependency", name), sl.Err(err))
			data.Checks[name] = "unavailable"
			// без Redis нет сессий
			if name == "redis" {
				code = http.StatusServiceUnavailable
			}
			continue
		}
		data.Checks[name] = "ok"
	}

	render.Status(r, code)
	render.JSON(w, r, response.OKWithData(data))
}
