package applog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func TestFromContext_Fallback(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	l.Infow("does not panic")
}

func TestIntoFromContext(t *testing.T) {
	l, logs := newObserved()
	ctx := Into(context.Background(), l)

	FromContext(ctx).Infow("hello", "k", "v")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "hello", logs.All()[0].Message)
}

func TestWithLogger_TagsRequestID(t *testing.T) {
	l, logs := newObserved()

	h := middleware.RequestID(WithLogger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Infow("inside")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}

func TestAccessLog(t *testing.T) {
	l, logs := newObserved()

	h := WithLogger(l)(AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/articles", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "POST", fields["method"])
	require.Equal(t, "/articles", fields["path"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.EqualValues(t, 5, fields["bytes"])
}

func TestRecoverer(t *testing.T) {
	l, logs := newObserved()

	h := WithLogger(l)(Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Internal server error", body["message"])
	require.NotContains(t, rec.Body.String(), "boom")

	require.Equal(t, 1, logs.FilterMessage("panic").Len())
}

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod"} {
		l, err := New(env)
		require.NoError(t, err, env)
		require.NotNil(t, l, env)
	}
}
