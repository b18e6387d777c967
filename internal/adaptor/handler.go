package adaptor

import (
	"filmfeed/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Movie     *MovieHandler
	Watchlist *WatchlistHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
	}
}
