package errorx

import "fmt"

// Error is the only error type domain operations return to the router. It is
// a value, compared and unwrapped with errors.As, never panicked.
type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
