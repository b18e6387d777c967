package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"filmfeed/internal/dto/request"
	"filmfeed/internal/dto/response"
	"filmfeed/internal/usecase"
	"filmfeed/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log,
	}
}

// Add handles POST /watchlist
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddWatchlistRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Add(r.Context(), &req); err != nil {
		h.log.Error("Add to watchlist failed", zap.Error(err), zap.String("title", req.Title))
		utils.ResponseInternalError(w, "Failed to add to watchlist.")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.MessageResponse{
		Message: "Movie added to watchlist successfully!",
	})
}

// Show handles POST /watchlistShow
func (h *WatchlistHandler) Show(w http.ResponseWriter, r *http.Request) {
	var req request.ShowWatchlistRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	entries, err := h.service.Show(r.Context(), req.UserID)
	if err != nil {
		h.log.Error("Show watchlist failed", zap.Error(err), zap.Int64("user_id", req.UserID))
		utils.ResponseInternalError(w, "Failed to fetch watchlist.")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, entries)
}

// Delete handles POST /deleteWatchList
func (h *WatchlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteWatchlistRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Delete(r.Context(), req.MovieID); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			utils.ResponseNotFound(w, "Movie not found in watchlist")
			return
		}
		h.log.Error("Delete from watchlist failed", zap.Error(err), zap.Int64("entry_id", req.MovieID))
		utils.ResponseInternalError(w, "Failed to delete from watchlist.")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.MessageResponse{
		Message: "Movie removed from watchlist successfully",
	})
}
