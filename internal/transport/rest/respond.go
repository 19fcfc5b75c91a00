package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fundrik/backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusForError maps domain and repository failures to HTTP status codes.
// The detail sentinels are checked before the repository marker so a missing
// row is a 404, not a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidEntityID),
		errors.Is(err, domain.ErrInvalidCampaignTitle),
		errors.Is(err, domain.ErrInvalidCampaignTarget),
		errors.Is(err, domain.ErrCampaignChange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
