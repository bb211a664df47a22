package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*Tracer, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	tracer := New("test", zap.New(core))
	t.Cleanup(tracer.Close)
	return tracer, logs
}

func TestStartSpanNesting(t *testing.T) {
	tracer, _ := newObserved(t)

	root, ctx := tracer.StartSpan(context.Background(), "root")
	child, childCtx := tracer.StartSpan(ctx, "child")

	assert.True(t, strings.HasPrefix(string(root.TraceID), "req_"))
	assert.True(t, strings.HasPrefix(string(root.SpanID), "span_"))
	assert.Empty(t, root.ParentID)

	assert.Equal(t, root.TraceID, child.TraceID)
	assert.Equal(t, root.SpanID, child.ParentID)
	assert.Equal(t, child.SpanID, GetSpanID(childCtx))
}

func TestInjectAndRemote(t *testing.T) {
	tracer, _ := newObserved(t)
	span, ctx := tracer.StartSpan(context.Background(), "client")

	h := http.Header{}
	Inject(ctx, h)
	assert.Equal(t, string(span.TraceID), h.Get(HeaderTraceID))
	assert.Equal(t, string(span.SpanID), h.Get(HeaderSpanID))

	remote := WithRemote(context.Background(), TraceID(h.Get(HeaderTraceID)), SpanID(h.Get(HeaderSpanID)))
	server, _ := tracer.StartSpan(remote, "server")
	assert.Equal(t, span.TraceID, server.TraceID)
	assert.Equal(t, span.SpanID, server.ParentID)
}

func TestSubmitLogsSpan(t *testing.T) {
	tracer, logs := newObserved(t)

	span, _ := tracer.StartSpan(context.Background(), "numeric.jacobi")
	span.SetTag("iterations", "12")
	span.Finish()
	tracer.Submit(span)

	failed, _ := tracer.StartSpan(context.Background(), "numeric.central")
	failed.SetError(errors.New("boom"))
	failed.Finish()
	tracer.Submit(failed)

	tracer.Close()

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "span completed", entries[0].Message)
	assert.Equal(t, "12", entries[0].ContextMap()["iterations"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, http.StatusInternalServerError, failed.StatusCode)
}

func TestHTTPMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer, _ := newObserved(t)

	var seen TraceID
	r := gin.New()
	r.Use(HTTPMiddleware(tracer))
	r.GET("/ping", func(c *gin.Context) {
		seen = GetTraceID(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderTraceID, "req_upstream")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, TraceID("req_upstream"), seen)
	assert.Equal(t, "req_upstream", w.Header().Get(HeaderTraceID))
	assert.NotEmpty(t, w.Header().Get(HeaderSpanID))
}

func TestFormatTrace(t *testing.T) {
	assert.Equal(t, "[trace:a span:b]", FormatTrace("a", "b"))
}
