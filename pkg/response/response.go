// Package response writes the JSON envelope every API handler uses.
//
// Success envelope:
//
//	{"status": "success", "message": "...", "data": {...}}
//
// Error envelope:
//
//	{"status": "error", "message": "...", "errors": {...}}
package response

import (
	"encoding/json"
	"net/http"

	"github.com/adityakr/bazaari/pkg/logger"
)

// Envelope is the uniform API response body.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("response: encode failed", "error", err)
	}
}

// JSON writes a success envelope with the given status code.
func JSON(w http.ResponseWriter, code int, message string, data interface{}) {
	write(w, code, Envelope{Status: "success", Message: message, Data: data})
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusOK, message, data)
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusCreated, message, data)
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes an error envelope with the given status code.
func Error(w http.ResponseWriter, code int, message string) {
	write(w, code, Envelope{Status: "error", Message: message})
}

// ValidationError writes a 422 envelope carrying per-field messages.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, Envelope{
		Status:  "error",
		Message: "The given data was invalid.",
		Errors:  errs,
	})
}

// BadRequest writes a 400 error envelope.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden writes a 403 error envelope.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// NotFound writes a 404 error envelope.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Conflict writes a 409 error envelope.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}

// ServerError writes a 500 error envelope and logs the underlying cause.
func ServerError(w http.ResponseWriter, err error) {
	logger.Error("internal server error", "error", err)
	Error(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

// ServiceUnavailable writes a 503 error envelope.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	Error(w, http.StatusServiceUnavailable, message)
}
