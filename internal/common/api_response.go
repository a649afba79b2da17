package common

import (
	"encoding/json"
	"net/http"
	"time"

	"fundforge/platform/internal/constants"
	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	}

	writeJSON(w, code, response)
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ResponseTime: GetResponseTime(initTime),
	}

	writeJSON(w, code, response)
}

// RespondValidationErrors sends field-level errors for form re-display.
// preferencesApplied reports whether the preference reconciliation half of
// the request committed before validation failed.
func RespondValidationErrors(w http.ResponseWriter, initTime time.Time, fields map[string][]string, preferencesApplied bool) {
	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      "validation failed",
		ResponseTime: GetResponseTime(initTime),
		Data:         dtos.ValidationErrorResponse{Errors: fields, PreferencesApplied: preferencesApplied},
	}

	writeJSON(w, http.StatusUnprocessableEntity, response)
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
