package wire

import (
	"filmfeed/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Route names and methods predate this rewrite; the frontend posts to
// all three.
func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler) {
	r.Post("/watchlist", watchlistHandler.Add)
	r.Post("/watchlistShow", watchlistHandler.Show)
	r.Post("/deleteWatchList", watchlistHandler.Delete)
}
