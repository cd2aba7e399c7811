// internal/app/features/errors/render.go
package errors

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// InternalServerErrorMessage is the only detail a client sees for an
// unexpected failure.
const InternalServerErrorMessage = "Internal Server Error"

// ErrorLogger is the central handler for unexpected errors. Handlers pass
// failures here instead of writing their own 500 responses.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger returns an ErrorLogger writing to logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// ServerError logs err with request context and sends the generic 500 body.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	e.Log.Error(msg, fields...)
	Write(w, http.StatusInternalServerError, InternalServerErrorMessage)
}

// Recoverer converts a panic in a downstream handler into the same 500
// response ServerError produces.
func (e *ErrorLogger) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			e.ServerError(w, r, "panic serving request", fmt.Errorf("panic: %v", rec),
				zap.ByteString("stack", debug.Stack()))
		}()
		next.ServeHTTP(w, r)
	})
}
