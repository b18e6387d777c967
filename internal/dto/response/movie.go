package response

type RateMovieResponse struct {
	Message string `json:"message"`
	MovieID int64  `json:"movieId"`
}

// FeedMovieResponse keys match the home feed's historical JSON shape:
// snake_case, release_date holding the release year string.
type FeedMovieResponse struct {
	MovieID       int64    `json:"movie_id"`
	Title         string   `json:"title"`
	ReleaseDate   string   `json:"release_date"`
	Actors        []string `json:"actors"`
	Poster        string   `json:"poster"`
	Reviews       []string `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
}
