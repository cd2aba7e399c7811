// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON body of every error reply. AllErrors is set only for
// validation failures and lists every violation in order; Error repeats the first.
type Response struct {
	Error     string   `json:"error"`
	AllErrors []string `json:"allErrors,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Write sends {"error": msg} with status.
func Write(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Response{Error: msg})
}

// BadRequest sends a 400 with msg.
func BadRequest(w http.ResponseWriter, msg string) {
	Write(w, http.StatusBadRequest, msg)
}

// NotFound sends a 404 with msg.
func NotFound(w http.ResponseWriter, msg string) {
	Write(w, http.StatusNotFound, msg)
}

// Validation sends a 400 listing every violation. It is a no-op for an
// empty list.
func Validation(w http.ResponseWriter, messages []string) {
	if len(messages) == 0 {
		return
	}
	WriteJSON(w, http.StatusBadRequest, Response{Error: messages[0], AllErrors: messages})
}

// RouteNotFound is the router's NotFound handler.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	NotFound(w, "Not found")
}

// MethodNotAllowed is the router's MethodNotAllowed handler.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Write(w, http.StatusMethodNotAllowed, "Method not allowed")
}
