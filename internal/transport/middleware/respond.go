package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API error envelope. Middleware answers before any
// handler runs, so it cannot reuse the handler-side helpers.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
