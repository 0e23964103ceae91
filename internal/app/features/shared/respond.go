// internal/app/features/shared/respond.go

// Package shared holds the response helpers the API features have in
// common. Dashboard clients predate this backend, so the envelope shapes
// here are contracts, not conventions.
package shared

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a plain {"error": ...} body. Used by read endpoints.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]any{"error": msg})
}

// Failure writes {"success": false, "error": ...}. Write endpoints report
// upstream trouble this way with HTTP 200: the dashboard treats any
// non-200 as a network fault, so application-level failure stays in the
// body.
func Failure(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]any{"success": false, "error": msg})
}

// MethodNotAllowed is the 405 body shared by every feature.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
