package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes an arbitrary payload with a custom status code.
// The route shapes here predate this rewrite, so handlers build their
// own payloads instead of sharing one envelope.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

type messageResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, messageResponse{Message: message, Errors: errors})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, messageResponse{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, messageResponse{Message: message})
}
