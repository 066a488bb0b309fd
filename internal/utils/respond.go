package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body: a machine-checkable status plus a
// human-readable message.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func RespondError(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, ErrorResponse{Status: "error", Message: message})
}
