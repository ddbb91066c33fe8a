package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope shared by every API endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// RespondJSON writes an envelope with the given status code.
func RespondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// RespondData writes a successful envelope wrapping data.
func RespondData(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// RespondList writes a successful envelope wrapping a list and its count.
func RespondList(w http.ResponseWriter, count int, data interface{}) {
	RespondJSON(w, http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

// RespondError writes a failure envelope with the given status code.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{Success: false, Message: message})
}
