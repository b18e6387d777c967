package entity

// Movie rows are created lazily, the first time somebody rates a title.
// ReleaseYear stays a string because the catalog reports "Unknown" for
// titles without a release date.
type Movie struct {
	ID          int64    `db:"id"`
	Title       string   `db:"title"`
	ReleaseYear string   `db:"release_year"`
	Actors      []string `db:"actors"`
	PosterURL   string   `db:"poster_url"`
}

// FeedMovie is one movie with its review texts and rating values, as
// produced by the home-feed aggregation query.
type FeedMovie struct {
	Movie
	Reviews []string
	Ratings []float64
}
