package dto

import "net/http"

// Transport-level error codes. Domain errors keep their own codes and
// are mapped to HTTP statuses below.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request binding fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks a required capability
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "CONFLICT"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	// Transport errors
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Invalid input -> 400 Bad Request
	"INVALID_INPUT":             http.StatusBadRequest,
	"INVALID_NAME":              http.StatusBadRequest,
	"INVALID_CINIT":             http.StatusBadRequest,
	"INVALID_PHONE":             http.StatusBadRequest,
	"INVALID_EMAIL":             http.StatusBadRequest,
	"INVALID_PLAN":              http.StatusBadRequest,
	"INVALID_PLAN_DURATION":     http.StatusBadRequest,
	"INVALID_PRICE":             http.StatusBadRequest,
	"INVALID_REMINDER_DAYS":     http.StatusBadRequest,
	"INVALID_ROLE":              http.StatusBadRequest,
	"INVALID_USERNAME":          http.StatusBadRequest,
	"INVALID_PASSWORD":          http.StatusBadRequest,
	"INVALID_DISPLAY_NAME":      http.StatusBadRequest,
	"INVALID_MEMBERSHIP_WINDOW": http.StatusBadRequest,

	// Authentication -> 401
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,

	// Authorization and account state -> 403
	ErrCodeForbidden:      http.StatusForbidden,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,

	// Missing resources -> 404
	ErrCodeNotFound:  http.StatusNotFound,
	"USER_NOT_FOUND": http.StatusNotFound,

	// Conflicts -> 409
	ErrCodeConflict:         http.StatusConflict,
	"ALREADY_EXISTS":        http.StatusConflict,
	"CONCURRENCY_CONFLICT":  http.StatusConflict,
	"OPTIMISTIC_LOCK_ERROR": http.StatusConflict,
	"LAST_ADMIN":            http.StatusConflict,
	"CANNOT_DELETE":         http.StatusConflict,

	// State machine violations -> 422 Unprocessable Entity
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"ALREADY_FROZEN":      http.StatusUnprocessableEntity,
	"CLIENT_FROZEN":       http.StatusUnprocessableEntity,
	"NOT_FROZEN":          http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":      http.StatusUnprocessableEntity,
	"ALREADY_INACTIVE":    http.StatusUnprocessableEntity,
	"ALREADY_DEACTIVATED": http.StatusUnprocessableEntity,
	"NOT_LOCKED":          http.StatusUnprocessableEntity,
	"PLAN_INACTIVE":       http.StatusUnprocessableEntity,

	// Infrastructure failures -> 500
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
	"TOKEN_ERROR":         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
