package usecase

import (
	"filmfeed/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Movie     MovieService
	Watchlist WatchlistService
}

func NewService(repo *repository.Repository, searcher MovieSearcher, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, log),
		Movie:     NewMovieService(repo.Ledger, searcher, log),
		Watchlist: NewWatchlistService(repo.Watchlist, log),
	}
}
