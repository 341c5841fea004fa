package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// statusBody is the {success, message} envelope every endpoint of the
// service answers with.
type statusBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteStatus writes a {success, message} JSON body with statusCode.
func WriteStatus(w http.ResponseWriter, success bool, message string, statusCode int) (int, error) {
	return WriteJSON(w, statusBody{Success: success, Message: message}, statusCode)
}
