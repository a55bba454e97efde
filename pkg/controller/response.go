package controller

import (
	"errors"
	"net/http"
	"privacymon/pkg/logger"
	"privacymon/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// WriteJSON encodes the response body with fn and writes it with status.
func WriteJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	fn(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// StatusCode maps an error to the HTTP status of its serrors kind.
// Errors without a kind map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes {"error": "..."} with the status StatusCode picks.
// Internal errors are logged and their message is hidden from the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		msg = http.StatusText(status)
	}

	WriteJSON(w, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("error", func(e *jx.Encoder) { e.Str(msg) })
		})
	})
}
