package errorx

import "net/http"

type Code int

var Unknown = Error{Code: Internal, Message: "Request failed"}

const (
	BadRequest         Code = 100001
	NotFound           Code = 100002
	AlreadyExists      Code = 100003
	PreconditionFailed Code = 100004
	Unavailable        Code = 100005
	Internal           Code = 100006
)

// StatusCode is the single mapping from an error kind to the transport status
// the router writes alongside the error envelope.
func StatusCode(code Code) int {
	switch code {
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	case PreconditionFailed:
		return http.StatusPreconditionFailed
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
