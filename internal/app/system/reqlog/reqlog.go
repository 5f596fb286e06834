// Package reqlog logs one line per HTTP request.
package reqlog

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// Middleware logs status, method, URL, duration, client IP and user agent once
// the response is written. Mount it after chi's RealIP so RemoteAddr holds the
// client address.
func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(HeaderRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, reqID)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				logger.Info("http request",
					zap.Int("status", status),
					zap.String("method", r.Method),
					zap.String("url", r.URL.RequestURI()),
					zap.Int64("duration_ms", time.Since(start).Milliseconds()),
					zap.String("ip", r.RemoteAddr),
					zap.String("ua", r.UserAgent()),
					zap.String("request_id", reqID),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
