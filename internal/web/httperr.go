package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"diceroller/internal/errs"
)

// statusCode maps an error to an HTTP status:
//   - context deadline/cancel → 504/408
//   - errs.Warn → 400
//   - anything else → 500
func statusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}
	if e, ok := errs.AsErr(err); ok && e.Lv == errs.Warn {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fail logs err and writes it as a plain-text error response. Client errors
// log at warn, server errors at error.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusCode(err)
	attrs := []any{
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("err", err),
	}
	if status >= http.StatusInternalServerError {
		s.logger().Error(msg, attrs...)
		http.Error(w, http.StatusText(status), status)
		return
	}
	s.logger().Warn(msg, attrs...)
	http.Error(w, err.Error(), status)
}
