package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
)

// Input error codes
const (
	ErrCodeBadRequest      = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput    = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Rendering error codes
const (
	// ErrCodeRenderFailed is used when the PDF stream could not be produced
	ErrCodeRenderFailed = "ERR_RENDER_FAILED"
	// ErrCodeRenderTimeout is used when rendering exceeded its deadline
	ErrCodeRenderTimeout = "ERR_RENDER_TIMEOUT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Rendering failures are never the client's fault
	ErrCodeRenderFailed:  http.StatusInternalServerError,
	ErrCodeRenderTimeout: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain and infrastructure codes to API codes
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":         ErrCodeNotFound,
	"ALREADY_EXISTS":    ErrCodeAlreadyExists,
	"INVALID_INPUT":     ErrCodeInvalidInput,
	"VALIDATION_ERROR":  ErrCodeValidation,
	"BAD_REQUEST":       ErrCodeBadRequest,
	"INTERNAL_ERROR":    ErrCodeInternal,
	"REQUEST_TOO_LARGE": ErrCodeRequestTooLarge,
	"RENDER_FAILED":     ErrCodeRenderFailed,
	"RENDER_TIMEOUT":    ErrCodeRenderTimeout,
	"UNKNOWN_ENGINE":    ErrCodeInternal,
}

// NormalizeErrorCode converts a legacy error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
