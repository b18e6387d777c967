package response

import "filmfeed/internal/data/entity"

type WatchlistEntryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	ReleaseYear string `json:"releaseYear"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Helper converter
func WatchlistEntryToResponse(entry *entity.WatchlistEntry) WatchlistEntryResponse {
	return WatchlistEntryResponse{
		ID:          entry.ID,
		Title:       entry.Title,
		Poster:      entry.Poster,
		ReleaseYear: entry.ReleaseYear,
	}
}
