package osmapi

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes an API call can produce.
// Callers match on Kind rather than on distinct error types.
type Kind int

const (
	// KindInvalidArgument means the caller passed a malformed object type
	// or a non-positive id. Raised before any network call.
	KindInvalidArgument Kind = iota

	// KindUnauthorized corresponds to HTTP 401.
	KindUnauthorized

	// KindBadRequest corresponds to HTTP 400.
	KindBadRequest

	// KindNotFound corresponds to HTTP 404, or a 200 single-object
	// response that decoded to zero objects.
	KindNotFound

	// KindGone corresponds to HTTP 410 (object deleted).
	KindGone

	// KindServer corresponds to HTTP 500.
	KindServer

	// KindAPI is any other non-200 status.
	KindAPI

	// KindTooManyObjects means a single-object lookup decoded to more
	// than one object.
	KindTooManyObjects

	// KindDecode means the response body could not be parsed as OSM XML.
	KindDecode

	// KindTransport means the network call itself failed; the server was
	// never reached or the connection broke.
	KindTransport
)

// String returns the kind's taxonomy name.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid-argument"
	case KindUnauthorized:
		return "unauthorized"
	case KindBadRequest:
		return "bad-request"
	case KindNotFound:
		return "not-found"
	case KindGone:
		return "gone"
	case KindServer:
		return "server"
	case KindAPI:
		return "api"
	case KindTooManyObjects:
		return "too-many-objects"
	case KindDecode:
		return "decode"
	case KindTransport:
		return "transport"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error type returned by every client operation.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status, 0 when the failure is not HTTP-derived
	Op         string // the operation that failed, e.g. "GetNode"
	Message    string
	Err        error // wrapped cause for transport and decode failures
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("osmapi: %s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error with the given kind.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// IsNotFound reports whether err means the requested object does not exist.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsInvalidArgument reports whether err was caused by bad caller input.
func IsInvalidArgument(err error) bool {
	return IsKind(err, KindInvalidArgument)
}
