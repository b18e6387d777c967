package adaptor

import (
	"encoding/json"
	"net/http"

	"filmfeed/internal/dto/request"
	"filmfeed/internal/dto/response"
	"filmfeed/internal/usecase"
	"filmfeed/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// Search handles POST /search-movie
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.SearchMovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movies, err := h.service.Search(r.Context(), req.MovieName)
	if err != nil {
		h.log.Error("Movie search failed", zap.Error(err), zap.String("query", req.MovieName))
		utils.ResponseInternalError(w, "Failed to fetch movies.")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}

// Rate handles POST /rate-movie
func (h *MovieHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req request.RateMovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movieID, err := h.service.Rate(r.Context(), &req)
	if err != nil {
		h.log.Error("Rate movie failed", zap.Error(err), zap.String("title", req.Title))
		utils.ResponseInternalError(w, "Failed to save review or rating.")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.RateMovieResponse{
		Message: "Movie review and rating saved successfully!",
		MovieID: movieID,
	})
}

// Home handles GET /home
func (h *MovieHandler) Home(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.HomeFeed(r.Context())
	if err != nil {
		h.log.Error("Home feed failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to fetch home data.")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, feed)
}
