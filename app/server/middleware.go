package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mytheresa/product-catalog/app/api"
)

// RequestLogger logs one line per request with its status and duration.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// Recoverer turns a panic into a 500 error envelope.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.Stack("stack"),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)

				resp := api.ErrorResponse{
					Error: api.ErrorDetail{Code: "INTERNAL_ERROR", Message: "an internal error occurred"},
				}
				if err := api.WriteJSON(w, http.StatusInternalServerError, resp); err != nil {
					logger.Warn("failed to write error response", zap.Error(err))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
