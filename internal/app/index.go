package app

import (
	"net/http"
	"strings"
)

// Режимы работы API
const (
	ModeFull     = "full"
	ModeRootOnly = "root_only"
)

// Index - ответ корневого маршрута
type Index struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Mode          string            `json:"mode"`
	Endpoints     *IndexEndpoints   `json:"endpoints,omitempty"`
	Documentation map[string]string `json:"documentation,omitempty"`
}

// IndexEndpoints содержит абсолютные ссылки на ресурсы
type IndexEndpoints struct {
	Stats            string            `json:"stats"`
	UpcomingLaunches string            `json:"upcoming_launches"`
	UpcomingStats    string            `json:"upcoming_stats"`
	Launches         string            `json:"launches"`
	Dragon           string            `json:"dragon"`
	DragonSummary    string            `json:"dragon_summary"`
	HealthChecks     map[string]string `json:"health_checks"`
}

var documentation = map[string]string{
	"stats":             "Get SpaceX launch statistics including total launches, landings, and reflights",
	"upcoming_launches": "Get upcoming SpaceX launches with detailed mission information",
	"upcoming_stats":    "Get counts of upcoming launches by vehicle, launch site, mission status and type",
	"launches":          "Get past SpaceX launches with mission details and status",
	"dragon":            "Get live Dragon spacecraft telemetry and its derived summary",
}

// HandleRoot обрабатывает GET /
//
// @Summary API index
// @Tags system
// @Produce json
// @Success 200 {object} Index
// @Router / [get]
func (a *App) HandleRoot(w http.ResponseWriter, r *http.Request) {
	index := Index{
		Message: "Welcome to SpaceX API",
		Version: "1.0",
		Mode:    ModeRootOnly,
	}
	if a.available {
		base := baseURL(r)
		index.Mode = ModeFull
		index.Endpoints = &IndexEndpoints{
			Stats:            base + "/stats/",
			UpcomingLaunches: base + "/upcoming/",
			UpcomingStats:    base + "/upcoming/stats/",
			Launches:         base + "/launches/",
			Dragon:           base + "/dragon/",
			DragonSummary:    base + "/dragon/summary/",
			HealthChecks: map[string]string{
				"stats":    base + "/stats/health/",
				"upcoming": base + "/upcoming/health/",
				"launches": base + "/launches/health/",
				"dragon":   base + "/dragon/health/",
			},
		}
		index.Documentation = documentation
	}
	a.writeJSONResponse(w, http.StatusOK, index)
}

// baseURL восстанавливает схему и хост запроса
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(fwd, ",")[0]))
	}
	return scheme + "://" + r.Host
}
