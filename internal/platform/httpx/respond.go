// Package httpx provides the JSON response and request-binding helpers shared
// by every route handler.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape of every non-2xx response.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failed validation rule on a request body.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends an ErrorBody carrying only a message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Message: message})
}

// ValidationFailed sends the 400 body produced by a failed bind.
func ValidationFailed(w http.ResponseWriter, errs []FieldError) {
	JSON(w, http.StatusBadRequest, ErrorBody{Message: "Validation error", Errors: errs})
}

// NoContent sends an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON decodes the JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
