// Package httpres shapes the JSON envelopes the API speaks:
// {success: true, data|message} on success, {success: false, error} on failure.
package httpres

import (
	"encoding/json"
	"net/http"
)

type successBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Added   *int        `json:"added,omitempty"`
}

type errorBody struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successBody{Success: true, Data: data})
}

func SuccessMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, successBody{Success: true, Message: message})
}

func SuccessData(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, successBody{Success: true, Message: message, Data: data})
}

// SuccessCount is used by list endpoints that report their result size.
func SuccessCount(w http.ResponseWriter, status int, count int, data interface{}) {
	writeJSON(w, status, successBody{Success: true, Data: data, Count: &count})
}

// SuccessAdded reports how many documents a seeding endpoint created.
func SuccessAdded(w http.ResponseWriter, status int, message string, added int, data interface{}) {
	writeJSON(w, status, successBody{Success: true, Message: message, Added: &added, Data: data})
}

// Error writes the failure envelope. Details are only attached outside
// production; callers pass nil there.
func Error(w http.ResponseWriter, status int, message string, details interface{}) {
	writeJSON(w, status, errorBody{Success: false, Error: message, Details: details})
}
