// Package server assembles the public and diagnostics routers.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/applog"
	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/metrics"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

type Options struct {
	Logger   *zap.SugaredLogger
	Articles article.Articles
	// Metrics is optional.
	Metrics *metrics.Metrics
}

// NewRouter returns the public HTTP API.
func NewRouter(o Options) chi.Router {
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(applog.WithLogger(logger))
	r.Use(applog.AccessLog)
	if o.Metrics != nil {
		// Outside Recoverer, so panicked requests are counted as 500s.
		r.Use(o.Metrics.Middleware)
	}
	r.Use(applog.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, errresponse.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, errresponse.ErrMethodNotAllowed)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("root.")); err != nil {
			applog.FromContext(r.Context()).Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("pong")); err != nil {
			applog.FromContext(r.Context()).Errorw(err.Error())
		}
	})

	r.Mount("/articles", article.NewAPI(o.Articles).Routes())

	return r
}

// NewDiagRouter serves /metrics (when m is set) and /healthz, which pings s.
func NewDiagRouter(m *metrics.Metrics, s store.Store) chi.Router {
	r := chi.NewRouter()

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			_ = render.Render(w, r, errresponse.ErrUnavailable)

			return
		}

		render.JSON(w, r, render.M{"status": "ok"})
	})

	return r
}
