// internal/wire/wire.go
package wire

import (
	"net/http"

	"filmfeed/internal/adaptor"
	"filmfeed/internal/data/repository"
	"filmfeed/internal/usecase"
	"filmfeed/pkg/middleware"
	"filmfeed/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, searcher usecase.MovieSearcher, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, searcher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireMovie(r, handler.Movie)
	wireWatchlist(r, handler.Watchlist)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
