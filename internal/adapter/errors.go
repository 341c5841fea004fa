package adapter

import "errors"

var (
	// ErrUnauthorized is returned for HTTP 401 and 403. It must never be
	// treated as "not found" by callers.
	ErrUnauthorized = errors.New("platform rejected API key")
	// ErrForbidden is additionally wrapped for HTTP 403.
	ErrForbidden = errors.New("insufficient permission")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("platform internal error")
	ErrBadGateway          = errors.New("platform bad gateway")
	ErrUnexpectedResponse  = errors.New("unexpected platform response")

	// ErrTransport wraps failures where no HTTP response was received.
	ErrTransport = errors.New("platform unreachable")
)
