package gateway

import (
	"context"
	"errors"
	"net"
)

// classifyTransportError maps a transport-level failure to its category.
// Pure: the same error always yields the same category. Order matters —
// context errors are checked before net.Error because a deadline-exceeded
// url.Error satisfies both.
func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(CategoryTimeout, 0, msgTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		return newError(CategoryCancelled, 0, msgCancelled, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(CategoryTimeout, 0, msgTimeout, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return newError(CategoryNoConnectivity, 0, msgNoConnectivity, err)
	}

	// Refused, unreachable, reset: anything the OS reports about the
	// connection itself means the network path is unavailable.
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return newError(CategoryNoConnectivity, 0, msgNoConnectivity, err)
	}

	return newError(CategoryUnknown, 0, msgUnknown, err)
}

// classifyStatus maps a non-2xx HTTP status code to its category.
func classifyStatus(statusCode int) *Error {
	switch statusCode {
	case 400:
		return newError(CategoryBadRequest, statusCode, msgBadRequest, nil)
	case 401:
		return newError(CategoryUnauthorized, statusCode, msgUnauthorized, nil)
	case 500:
		return newError(CategoryServerError, statusCode, msgServerError, nil)
	default:
		return newError(CategoryBadResponse, statusCode, msgBadResponse, nil)
	}
}

// errNoConnectivity is the pre-flight gate failure. It has no underlying
// transport cause because the transport is never invoked.
func errNoConnectivity() *Error {
	return newError(CategoryNoConnectivity, 0, msgNoConnectivity, nil)
}
