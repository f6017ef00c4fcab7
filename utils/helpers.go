package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/mazishark/mazishark/constants"
)

// GetStrEnvVar returns the value of an environment variable or a fallback.
func GetStrEnvVar(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetIntEnvVar returns an int from an environment variable. A value that is
// set but unparseable is a configuration error.
func GetIntEnvVar(key string, fallback int) (int, error) {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, Errorf("invalid value for environment variable %s: %q", key, value)
		}
		return i, nil
	}
	return fallback, nil
}

// GetBoolEnvVar returns a bool from an environment variable.
func GetBoolEnvVar(key string, fallback bool) bool {
	val := GetStrEnvVar(key, strconv.FormatBool(fallback))
	ret, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return ret
}

// HTTPErrorResponse is the standard error body for all JSON endpoints.
type HTTPErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// WriteHTTPError writes a standardized JSON error response.
func WriteHTTPError(w http.ResponseWriter, message string, code int) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(code)

	response := HTTPErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	}

	if data, err := json.Marshal(response); err == nil {
		w.Write(data)
	} else {
		// Fall back to plain text if JSON marshaling fails
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeText)
		fmt.Fprintf(w, "Error: %s", message)
	}
}

// WriteHTTPJSON writes a JSON response with proper headers.
func WriteHTTPJSON(w http.ResponseWriter, v any) error {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)

	data, err := json.Marshal(v)
	if err != nil {
		WriteHTTPError(w, "Failed to encode response", http.StatusInternalServerError)
		return err
	}
	_, err = w.Write(data)
	return err
}
