package utils

import (
	"encoding/json"
	"net/http"

	"customer-feedback/internal/widget"
)

// Response is the envelope every /api endpoint answers with. Notification is the
// toast the form page would show for the same outcome.
type Response struct {
	Status       bool                 `json:"status"`
	Message      string               `json:"message"`
	Data         any                  `json:"data,omitempty"`
	Errors       any                  `json:"errors,omitempty"`
	Notification *widget.Notification `json:"notification,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

// ResponseAccepted answers 202 for a submission that was acknowledged but not stored.
func ResponseAccepted(w http.ResponseWriter, n widget.Notification, data any) {
	writeJSON(w, http.StatusAccepted, Response{Status: true, Message: n.Title, Data: data, Notification: &n})
}

// ResponseRejected answers 400 for a submission the form would refuse, carrying the
// same notification.
func ResponseRejected(w http.ResponseWriter, n widget.Notification) {
	writeJSON(w, http.StatusBadRequest, Response{Status: false, Message: n.Title, Notification: &n})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	writeJSON(w, http.StatusBadRequest, Response{Status: false, Message: message, Errors: errors})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Status: false, Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, Response{Status: false, Message: "Internal server error"})
}
