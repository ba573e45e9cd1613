package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON encodes v as the response body. Lookups are never cached since
// they reflect current conditions.
func WriteJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

func WriteError(w http.ResponseWriter, msg string, status int) {
	WriteJSON(w, ErrorResponse{Message: msg, Status: status}, status)
}
