package utils

import (
	"net/http"

	"github.com/goccy/go-json"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Error []FieldError `json:"error"`
}

// ResponseJSON writes payload as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	js, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(append(js, '\n'))
}

// ResponseMessage writes {"message": message}
func ResponseMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, MessageResponse{Message: message})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusBadRequest, message)
}

// returns 400 Bad Request listing every field problem
func ResponseValidationError(w http.ResponseWriter, errs []FieldError) {
	ResponseJSON(w, http.StatusBadRequest, ValidationResponse{Error: errs})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusForbidden, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusNotFound, message)
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusMethodNotAllowed, message)
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusTooManyRequests, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusInternalServerError, message)
}
