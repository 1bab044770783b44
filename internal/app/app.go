package app

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ridwaanhall/SpaceX/internal/aggregate"
	"github.com/ridwaanhall/SpaceX/internal/apperr"
	"github.com/ridwaanhall/SpaceX/internal/envelope"
	"github.com/ridwaanhall/SpaceX/internal/middleware"
	"github.com/ridwaanhall/SpaceX/internal/service"
	"go.uber.org/zap"
)

// App содержит зависимости HTTP-обработчиков
type App struct {
	svc       *service.Service
	logger    *zap.Logger
	available bool
}

// HealthResponse - ответ проверки работоспособности
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewApp создаёт новое приложение
func NewApp(svc *service.Service, logger *zap.Logger, available bool) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{svc: svc, logger: logger, available: available}
}

// HandleStats обрабатывает GET /stats
//
// @Summary Launch statistics
// @Description Total launches, landings and reflights
// @Tags stats
// @Produce json
// @Success 200 {object} envelope.Envelope
// @Failure 500 {object} envelope.Envelope
// @Failure 503 {object} envelope.Envelope
// @Router /stats [get]
func (a *App) HandleStats(w http.ResponseWriter, r *http.Request) {
	reply, err := a.svc.Stats(r.Context())
	a.writeReply(w, r, envelope.MsgStats, reply, err)
}

// HandleUpcoming обрабатывает GET /upcoming
//
// @Summary Upcoming launches
// @Description Upcoming launches that passed schema validation with counters
// @Tags upcoming
// @Produce json
// @Success 200 {object} envelope.Envelope
// @Failure 503 {object} envelope.Envelope
// @Router /upcoming [get]
func (a *App) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	reply, err := a.svc.Upcoming(r.Context())
	a.writeReply(w, r, envelope.MsgUpcoming, reply, err)
}

// HandleUpcomingStats обрабатывает GET /upcoming/stats
//
// @Summary Upcoming launches summary
// @Description Counts by vehicle, launch site, mission status and mission type
// @Tags upcoming
// @Produce json
// @Success 200 {object} envelope.Envelope
// @Failure 503 {object} envelope.Envelope
// @Router /upcoming/stats [get]
func (a *App) HandleUpcomingStats(w http.ResponseWriter, r *http.Request) {
	reply, err := a.svc.UpcomingStats(r.Context())
	a.writeReply(w, r, envelope.MsgUpcomingStats, reply, err)
}

// HandleUpcomingByID обрабатывает GET /upcoming/{id}
//
// @Summary Upcoming launch by id
// @Tags upcoming
// @Produce json
// @Param id path int true "Launch id"
// @Success 200 {object} envelope.Envelope
// @Failure 400 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /upcoming/{id} [get]
func (a *App) HandleUpcomingByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.writeReply(w, r, "", service.Reply{}, apperr.New(apperr.KindValidation, "upcoming", err))
		return
	}
	reply, err := a.svc.UpcomingByID(r.Context(), id)
	a.writeReply(w, r, envelope.MsgUpcomingItem, reply, err)
}

// HandleLaunches обрабатывает GET /launches
//
// @Summary Past launches
// @Description Past launches, optionally sorted by date and time
// @Tags launches
// @Produce json
// @Param sort query string false "Sort field ('datetime')"
// @Param order query string false "Sort order ('asc' or 'desc')"
// @Success 200 {object} envelope.Envelope
// @Failure 503 {object} envelope.Envelope
// @Router /launches [get]
func (a *App) HandleLaunches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := aggregate.ParseSortOptions(q.Get("sort"), q.Get("order"))
	reply, err := a.svc.Launches(r.Context(), opts)
	a.writeReply(w, r, envelope.MsgLaunches, reply, err)
}

// HandleLaunch обрабатывает GET /launches/{link}
//
// @Summary Launch details
// @Tags launches
// @Produce json
// @Param link path string true "Launch link"
// @Success 200 {object} envelope.Envelope
// @Failure 400 {object} envelope.Envelope
// @Failure 404 {object} envelope.Envelope
// @Router /launches/{link} [get]
func (a *App) HandleLaunch(w http.ResponseWriter, r *http.Request) {
	reply, err := a.svc.Launch(r.Context(), chi.URLParam(r, "link"))
	a.writeReply(w, r, envelope.MsgLaunch, reply, err)
}

// HandleDragon обрабатывает GET /dragon
//
// @Summary Dragon telemetry
// @Description Latest telemetry frame with provider keys
// @Tags dragon
// @Produce json
// @Success 200 {object} envelope.Envelope
// @Failure 503 {object} envelope.Envelope
// @Router /dragon [get]
func (a *App) HandleDragon(w http.ResponseWriter, r *http.Request) {
	reply, err := a.svc.Dragon(r.Context())
	a.writeReply(w, r, envelope.MsgDragon, reply, err)
}

// HandleDragonSummary обрабатывает GET /dragon/summary
//
// @Summary Dragon telemetry summary
// @Tags dragon
// @Produce json
// @Success 200 {object} envelope.Envelope
// @Failure 503 {object} envelope.Envelope
// @Router /dragon/summary [get]
func (a *App) HandleDragonSummary(w http.ResponseWriter, r *http.Request) {
	reply, err := a.svc.DragonSummary(r.Context())
	a.writeReply(w, r, envelope.MsgDragonSummary, reply, err)
}

// HandleHealth возвращает обработчик проверки работоспособности с заданным сообщением
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /stats/health [get]
// @Router /upcoming/health [get]
// @Router /launches/health [get]
// @Router /dragon/health [get]
func (a *App) HandleHealth(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.writeJSONResponse(w, http.StatusOK, HealthResponse{Status: "healthy", Message: message})
	}
}

// writeReply пишет конверт ответа: успешный с данными или ошибку без подробностей
func (a *App) writeReply(w http.ResponseWriter, r *http.Request, message string, reply service.Reply, err error) {
	if err != nil {
		env, status := envelope.Failure(err)
		a.logger.Warn("Request failed",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.String("resource", apperr.ResourceOf(err)),
			zap.Stringer("category", apperr.KindOf(err)),
			zap.Int("status", status),
		)
		a.writeJSONResponse(w, status, env)
		return
	}

	if n := len(reply.Warnings); n > 0 {
		a.logger.Info("Schema warnings",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Stringer("outcome", reply.Outcome),
			zap.Int("count", n),
		)
	}
	envelope.SetWarnings(w.Header(), len(reply.Warnings))
	a.writeJSONResponse(w, http.StatusOK, envelope.Success(message, reply.Data))
}

// writeJSONResponse пишет JSON-ответ с проверкой ошибок
func (a *App) writeJSONResponse(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		a.logger.Error("Failed to encode response", zap.Error(err))
		env, code := envelope.Failure(err)
		data, _ = json.Marshal(env)
		status = code
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		a.logger.Debug("Failed to write response", zap.Error(err))
	}
}
