package tuner

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// BadRequest writes a 400 error with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// NotFound writes a 404 error with the given message.
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, map[string]string{"error": message})
}

// ServerError writes a 500 error.
func ServerError(w http.ResponseWriter, err error) {
	JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
