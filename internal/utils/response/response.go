package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope every storefront JSON endpoint answers with.
type APIResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// interface {} == any
func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data) //struct to json
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, APIResponse{
		Success: true,
		Data:    data,
	})
}

func Message(w http.ResponseWriter, statusCode int, success bool, message string) {
	WriteJson(w, statusCode, APIResponse{
		Success: success,
		Message: message,
	})
}

// Error writes a failure envelope. AppErrors keep their status and code but the
// message shown to the browser is the caller's user-safe one when given.
func Error(w http.ResponseWriter, err error, userMessage string) {

	statusCode := http.StatusInternalServerError
	resp := APIResponse{
		Success: false,
		Code:    errors.ErrCodeInternal,
		Message: "An unexpected error occurred",
	}

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		resp.Code = appErr.Code
		resp.Message = appErr.Message

		if appErr.Detail != "" {
			resp.Details = []string{appErr.Detail}
		}
	}

	if userMessage != "" {
		resp.Message = userMessage
	}

	WriteJson(w, statusCode, resp)
}

// Passthrough relays a downstream answer to the browser unchanged. An empty
// body is replaced by an envelope so the browser always gets JSON.
func Passthrough(w http.ResponseWriter, statusCode int, body []byte, fallbackMessage string) {

	if len(body) == 0 {
		Message(w, statusCode, statusCode < http.StatusBadRequest, fallbackMessage)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// package sends the list of errors
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field %s must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field %s must be at most %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("Field %s must be greater than %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		errMsgs = append(errMsgs, message)

	}

	WriteJson(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: errMsgs,
	})

}
