package errors

import "net/http"

// Code classifies an error. The JSON API reports it next to the message.
type Code string

// Codes raised by the catalog itself
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
	// CodeUnavailable covers an unreachable provider and a catalog that is
	// still loading or failed to load.
	CodeUnavailable Code = "UNAVAILABLE"
)

// Codes that only arrive from the provider through FromHTTPStatus
const (
	CodeDeadlineExceeded  Code = "DEADLINE_EXCEEDED"
	CodeAlreadyExists     Code = "ALREADY_EXISTS"
	CodePermissionDenied  Code = "PERMISSION_DENIED"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeUnimplemented     Code = "UNIMPLEMENTED"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
)

func (c Code) String() string {
	return string(c)
}

// HTTPStatus is the response status for c. Unknown codes are 500.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
