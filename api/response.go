package api

import (
	"encoding/json"
	"net/http"
)

// messageResponse is the body returned for validation and login failures.
// Guard rejections on protected routes carry no body at all, so a caller
// cannot probe which check failed.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}
