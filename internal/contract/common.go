// Package contract holds the request and response shapes shared by the
// service layer, the CLI and the HTTP API.
package contract

// ErrorCode classifies failures a caller can act on.
type ErrorCode string

const (
	ErrInvalidScope ErrorCode = "INVALID_SCOPE"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrForbidden    ErrorCode = "FORBIDDEN"
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func Errorf(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}
