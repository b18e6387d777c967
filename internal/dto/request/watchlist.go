package request

type AddWatchlistRequest struct {
	Title       string `json:"title" validate:"required"`
	Poster      string `json:"poster"`
	ReleaseYear string `json:"releaseYear"`
	UserID      int64  `json:"userid" validate:"required"`
}

type ShowWatchlistRequest struct {
	UserID int64 `json:"userid" validate:"required"`
}

// DeleteWatchlistRequest's movieid is the watchlist entry id, not a
// movie id. The field name is what the frontend has always sent.
type DeleteWatchlistRequest struct {
	MovieID int64 `json:"movieid" validate:"required"`
}
