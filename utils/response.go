package utils

import (
	"encoding/json"
	"net/http"
)

// JSON response envelope shared by every endpoint: {success, data|error}
// with an optional count on list responses.

type successResponse struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondSuccess writes a {success:true, data} envelope.
func RespondSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

// RespondList writes a {success:true, count, data} envelope.
func RespondList(w http.ResponseWriter, status, count int, data interface{}) {
	writeJSON(w, status, successResponse{Success: true, Count: &count, Data: data})
}

// RespondError writes a {success:false, error} envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}
