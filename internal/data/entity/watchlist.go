package entity

// WatchlistEntry is a denormalized copy of the movie fields the user
// saved, independent of the movies table.
type WatchlistEntry struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Poster      string `db:"poster"`
	ReleaseYear string `db:"release_year"`
	UserID      int64  `db:"user_id"`
}
