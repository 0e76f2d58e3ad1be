package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes a JSON body with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// RespondError writes an error envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondValidationError writes an error envelope carrying field-level
// details.
func RespondValidationError(w http.ResponseWriter, message string, details interface{}) {
	RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   message,
		"details": details,
	})
}
