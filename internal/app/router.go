package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/ridwaanhall/SpaceX/internal/docs"
	"github.com/ridwaanhall/SpaceX/internal/middleware"
	"go.uber.org/zap"
)

// Сообщения проверок работоспособности
const (
	HealthStats    = "SpaceX API is running"
	HealthUpcoming = "Upcoming Launches API is running"
	HealthLaunches = "Launches API is running"
	HealthDragon   = "Dragon API is running"
)

// NewRouter создаёт маршрутизатор. Если API недоступно, регистрируются
// только корневой маршрут и документация.
func NewRouter(a *App, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Порядок важен: идентификатор нужен логированию и восстановлению,
	// ответ восстановления проходит через сжатие
	r.Use(chimw.StripSlashes)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.GzipMiddleware)
	r.Use(middleware.RecoveryMiddleware(logger))

	r.Get("/", a.HandleRoot)
	r.Get("/swagger/doc.json", handleSwaggerDoc(logger))

	if !a.available {
		return r
	}

	r.Route("/stats", func(r chi.Router) {
		r.Get("/", a.HandleStats)
		r.Get("/health", a.HandleHealth(HealthStats))
	})
	r.Route("/upcoming", func(r chi.Router) {
		r.Get("/", a.HandleUpcoming)
		r.Get("/stats", a.HandleUpcomingStats)
		r.Get("/health", a.HandleHealth(HealthUpcoming))
		r.Get("/{id}", a.HandleUpcomingByID)
	})
	r.Route("/launches", func(r chi.Router) {
		r.Get("/", a.HandleLaunches)
		r.Get("/health", a.HandleHealth(HealthLaunches))
		r.Get("/{link}", a.HandleLaunch)
	})
	r.Route("/dragon", func(r chi.Router) {
		r.Get("/", a.HandleDragon)
		r.Get("/summary", a.HandleDragonSummary)
		r.Get("/health", a.HandleHealth(HealthDragon))
	})

	return r
}

// handleSwaggerDoc отдаёт зарегистрированный документ OpenAPI
func handleSwaggerDoc(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := docs.ReadDoc()
		if err != nil {
			logger.Error("Failed to read API document", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(doc)); err != nil {
			logger.Debug("Failed to write API document", zap.Error(err))
		}
	}
}
