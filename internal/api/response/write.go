// Package response holds the JSON shapes of the score sheet API and the
// helpers that write them.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON body with the given status. Sheets change on
// every mutation, so no response may be cached.
func JSON(w http.ResponseWriter, status int, data any) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent acknowledges a deleted sheet
func NoContent(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusNoContent)
}
