package errors

import "net/http"

// ErrorCode is the machine facing class of an Error
// values appear on the wire so never renumber them
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = 0 // unclassified
	ErrorCodePanic           ErrorCode = 1 // recovered by middleware
	ErrorCodeUnavailable     ErrorCode = 2 // upstream failed or is unreachable
	ErrorCodeTooManyRequests ErrorCode = 3 // upstream rate limit
	ErrorCodeUnauthorized    ErrorCode = 4 // upstream rejected our token
	ErrorCodeInvalidArgument ErrorCode = 5 // well formed input the upstream refused
	ErrorCodeValidation      ErrorCode = 6 // malformed input
	ErrorCodeJSON            ErrorCode = 7 // undecodable payload
	ErrorCodeNotFound        ErrorCode = 8 // no such user or resource
)

var codeInfo = map[ErrorCode]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeUnauthorized:    {"unauthorized", http.StatusUnauthorized},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
}

// String returns the snake case name used in logs
func (c ErrorCode) String() string {
	if i, ok := codeInfo[c]; ok {
		return i.name
	}
	return "unknown"
}

// HTTPStatusCode maps a code to the status we answer with; unknown codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if i, ok := codeInfo[c]; ok {
		return i.status
	}
	return http.StatusInternalServerError
}
