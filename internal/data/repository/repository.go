package repository

import (
	"filmfeed/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Ledger    LedgerRepository
	Watchlist WatchlistRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Ledger:    NewLedgerRepository(db, log),
		Watchlist: NewWatchlistRepository(db, log),
	}
}
