package wire

import (
	"filmfeed/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// POST /search-movie - search the external catalog
	r.Post("/search-movie", movieHandler.Search)

	// POST /rate-movie - save a review and rating, creating the movie on first reference
	r.Post("/rate-movie", movieHandler.Rate)

	// GET /home - every movie with its reviews and average rating
	r.Get("/home", movieHandler.Home)
}
