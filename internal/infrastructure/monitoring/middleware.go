package monitoring

import (
	"strconv"
	"time"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// scrapePath is excluded from request metrics so scrapes do not count themselves
const scrapePath = "/metrics"

// Middleware records count, latency and sizes of every routed request.
// Paths are labelled by route template, unmatched routes share one label.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == scrapePath {
			c.Next()
			return
		}

		start := time.Now()
		reqSize := max(c.Request.ContentLength, 0)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
			reqSize,
			int64(max(c.Writer.Size(), 0)),
		)
	}
}

// Timer measures one tool call made through the service registry.
// A Timer built with nil metrics only measures.
type Timer struct {
	start   time.Time
	metrics *Metrics
	service string
	tool    string
}

// NewTimer starts timing tool on service
func NewTimer(metrics *Metrics, service, tool string) *Timer {
	return &Timer{start: time.Now(), metrics: metrics, service: service, tool: tool}
}

// Stop records the call under the outcome label RecordRun uses
// ("success" or the failure kind) and returns the elapsed time
func (t *Timer) Stop(o types.Outcome) time.Duration {
	elapsed := time.Since(t.start)
	if t.metrics != nil {
		t.metrics.RecordServiceCall(t.service, t.tool, outcomeLabel(o), elapsed)
	}
	return elapsed
}
