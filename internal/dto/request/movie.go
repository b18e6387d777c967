package request

type SearchMovieRequest struct {
	MovieName string `json:"movieName" validate:"required"`
}

// RateMovieRequest carries the movie fields alongside the review and
// rating because the movie row may not exist yet. Field casing follows
// the frontend's existing payloads.
type RateMovieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Poster      string   `json:"poster"`
	ReleaseYear string   `json:"releaseyear" validate:"required"`
	Actors      []string `json:"actors"`
	Review      string   `json:"review"`
	Rating      float64  `json:"rating"`
	UserID      int64    `json:"userid" validate:"required"`
}
