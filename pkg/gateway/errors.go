package gateway

import (
	"errors"
	"fmt"
)

// Category is the closed set of normalized failure classifications a gateway
// call can produce. Every failed call yields exactly one category; callers
// branch on the category (or the Is* helpers) to decide what to do next.
type Category int

const (
	// CategoryUnknown is any failure the classifier cannot attribute.
	CategoryUnknown Category = iota

	// CategoryTimeout is a connect or receive timeout.
	CategoryTimeout

	// CategoryBadRequest is an HTTP 400 response.
	CategoryBadRequest

	// CategoryUnauthorized is an HTTP 401 response.
	CategoryUnauthorized

	// CategoryServerError is an HTTP 500 response.
	CategoryServerError

	// CategoryBadResponse is any other non-2xx response.
	CategoryBadResponse

	// CategoryCancelled is a caller-cancelled request.
	CategoryCancelled

	// CategoryNoConnectivity is a missing network, reported either by the
	// pre-flight check or by the transport itself.
	CategoryNoConnectivity
)

// String returns the category name for logs and metrics.
func (c Category) String() string {
	switch c {
	case CategoryTimeout:
		return "timeout"
	case CategoryBadRequest:
		return "bad_request"
	case CategoryUnauthorized:
		return "unauthorized"
	case CategoryServerError:
		return "server_error"
	case CategoryBadResponse:
		return "bad_response"
	case CategoryCancelled:
		return "cancelled"
	case CategoryNoConnectivity:
		return "no_connectivity"
	default:
		return "unknown"
	}
}

// User-facing messages, one per category. Fixed strings: callers are expected
// to show them verbatim.
const (
	msgTimeout        = "Connection Timeout! Please try again later."
	msgBadRequest     = "Bad Request! Check the parameters."
	msgUnauthorized   = "Unauthorized! Please log in again."
	msgServerError    = "Internal Server Error! Please try again later."
	msgBadResponse    = "Something went wrong! Please try again."
	msgCancelled      = "Request was cancelled!"
	msgNoConnectivity = "No Internet connection! Check your network."
	msgUnknown        = "Unexpected error occurred! Please try again."
)

// Error is the failure half of a gateway Outcome. It carries the normalized
// category, the HTTP status code when the failure was a bad response (zero
// otherwise), a fixed user-facing message, and the underlying cause when the
// transport reported one.
type Error struct {
	Category   Category
	StatusCode int
	Message    string

	cause error
}

func newError(category Category, statusCode int, message string, cause error) *Error {
	return &Error{
		Category:   category,
		StatusCode: statusCode,
		Message:    message,
		cause:      cause,
	}
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway: %s (status %d)", e.Category, e.StatusCode)
	}
	if e.cause != nil {
		return fmt.Sprintf("gateway: %s: %v", e.Category, e.cause)
	}
	return fmt.Sprintf("gateway: %s", e.Category)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// AsError extracts a *Error from err, if err carries one.
func AsError(err error) (*Error, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

func isCategory(err error, category Category) bool {
	gwErr, ok := AsError(err)
	return ok && gwErr.Category == category
}

// IsTimeout reports whether err is a connect or receive timeout.
func IsTimeout(err error) bool { return isCategory(err, CategoryTimeout) }

// IsBadRequest reports whether err is an HTTP 400 response.
func IsBadRequest(err error) bool { return isCategory(err, CategoryBadRequest) }

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool { return isCategory(err, CategoryUnauthorized) }

// IsServerError reports whether err is an HTTP 500 response.
func IsServerError(err error) bool { return isCategory(err, CategoryServerError) }

// IsBadResponse reports whether err is any other non-2xx response.
func IsBadResponse(err error) bool { return isCategory(err, CategoryBadResponse) }

// IsCancelled reports whether err is a cancelled request.
func IsCancelled(err error) bool { return isCategory(err, CategoryCancelled) }

// IsNoConnectivity reports whether err is a missing-network failure.
func IsNoConnectivity(err error) bool { return isCategory(err, CategoryNoConnectivity) }
