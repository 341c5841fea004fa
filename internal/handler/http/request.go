package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-link-txt/internal/app"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/utils"
	"github.com/go-chi/render"
)

const (
	apiKeyHeader = "x-api-key"

	// maxRequestBodySize caps /create and /verify-api-key bodies.
	maxRequestBodySize = 100 << 10
)

// decodeBody decodes a JSON or urlencoded form body into v, picked by
// Content-Type. A missing Content-Type is read as JSON. An empty body leaves
// v untouched.
func decodeBody(r *http.Request, v any) error {
	var err error
	if r.Header.Get("Content-Type") == "" {
		err = render.DecodeJSON(r.Body, v)
	} else {
		err = render.Decode(r, v)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// apiKeyFrom prefers the key from the body over the x-api-key header.
func apiKeyFrom(r *http.Request, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return r.Header.Get(apiKeyHeader)
}

// writeDecodeError answers a body that could not be decoded: 413 when it
// exceeded maxRequestBodySize, 400 otherwise.
func writeDecodeError(w http.ResponseWriter, log *logger.Logger, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Int64("limit", tooLarge.Limit).Msg("request body too large")
		utils.WriteStatus(w, false, app.MsgRequestTooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	log.Err(err).Msg("invalid request body was passed")
	utils.WriteStatus(w, false, app.MsgInvalidDataProvided, http.StatusBadRequest)
}

// writeIfTimedOut answers 504 when the request deadline set by
// withRequestTimeout has passed. The result computed after the deadline is dropped.
func writeIfTimedOut(w http.ResponseWriter, r *http.Request) bool {
	if !errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		return false
	}

	logger.FromRequest(r).Warn().Msg("request deadline exceeded")
	utils.WriteStatus(w, false, app.MsgRequestTimeout, http.StatusGatewayTimeout)
	return true
}
