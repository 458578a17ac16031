// Package applog builds the zap logger and the HTTP middleware that puts a
// request-scoped logger on the context.
package applog

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/errresponse"
)

type ctxKey int8

const ctxKeyLogger ctxKey = iota

// New returns a development logger for env "local" and a production one
// otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// Into returns a copy of ctx carrying l.
func Into(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, l)
}

// FromContext returns the logger stored by Into or WithLogger, or a no-op
// logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKeyLogger).(*zap.SugaredLogger); ok && l != nil {
		return l
	}

	return zap.NewNop().Sugar()
}

// WithLogger stores base on the request context, tagged with the chi
// request id when middleware.RequestID ran before it.
func WithLogger(base *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base
			if id := middleware.GetReqID(r.Context()); id != "" {
				l = l.With("request_id", id)
			}

			next.ServeHTTP(w, r.WithContext(Into(r.Context(), l)))
		})
	}
}

// AccessLog writes one line per request with the request-scoped logger.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		FromContext(r.Context()).Infow("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// Recoverer turns a panic into a JSON 500. The panic value is logged, not
// sent.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				FromContext(r.Context()).Errorw("panic",
					"path", r.URL.Path,
					"reason", rec,
					zap.StackSkip("stack", 2),
				)

				_ = render.Render(w, r, errresponse.ErrInternal(nil, "Internal server error"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
