// internal/wire/wire.go
package wire

import (
	"net/http"

	"customer-feedback/internal/adaptor"
	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"
	"customer-feedback/pkg/middleware"
	"customer-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, renderer, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	if config.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}

	// Apply routes
	wirePages(r, handler.Page)
	wireFeedback(r, handler.Feedback)
	wireAnalytics(r, handler.Analytics)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if config.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
