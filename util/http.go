package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Eyal-donut/products-scanner-server/db"
	"github.com/Eyal-donut/products-scanner-server/types"
)

// ResponseCodeFromError resolves a status code from a tagged store error
func ResponseCodeFromError(err error) int {
	var notFound *db.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var validation *db.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	var duplicate *db.DuplicateCodeError
	if errors.As(err, &duplicate) {
		return http.StatusConflict
	}

	var unavailable *db.UnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// Error creates a standardized error response
func Error(w http.ResponseWriter, originalError error) {
	ErrorWithCode(w, originalError, ResponseCodeFromError(originalError))
}

// ErrorWithCode creates a standardized error response with a status code
func ErrorWithCode(w http.ResponseWriter, originalError error, statusCode int) {
	response := types.ErrorResponse{
		Success: false,
		Message: fmt.Sprint(originalError),
	}

	jsonResponse, err := json.Marshal(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonResponse)
}

// Data wraps the payload in the standard success envelope
func Data(w http.ResponseWriter, statusCode int, data interface{}) {
	response := types.DataResponse{
		Success: true,
		Data:    data,
	}

	jsonResponse, err := json.Marshal(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonResponse)
}
