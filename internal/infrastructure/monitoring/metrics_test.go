package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRun(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordRun("jacobi", types.Succeed([]float64{1}, 12, nil, nil, "ok"), time.Millisecond)
	m.RecordRun("jacobi", types.Reject[[]float64](types.FailureDegeneracy, "zero diagonal"), time.Millisecond)
	m.RecordRun("regula_falsi", types.Exhaust[*float64](nil, 100, nil, nil, "no"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NumericRuns.WithLabelValues("jacobi", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NumericRuns.WithLabelValues("jacobi", "degeneracy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NumericRuns.WithLabelValues("regula_falsi", "non_convergence")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Runs["jacobi"])
	assert.Equal(t, int64(1), snap.Failures["degeneracy"])
	assert.Equal(t, int64(1), snap.Failures["non_convergence"])
}

func TestSnapshotIsCopy(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RecordRun("central", types.Succeed(types.Derivatives{}, 0, nil, nil, "ok"), 0)

	snap := m.Snapshot()
	snap.Runs["central"] = 99
	assert.Equal(t, int64(1), m.Snapshot().Runs["central"])
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(prometheus.NewRegistry())

	r := gin.New()
	r.Use(Middleware(m))
	r.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
}

func TestTimer(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	timer := NewTimer(m, "numerics", "numeric.jacobi")
	elapsed := timer.Stop(types.Reject[[]float64](types.FailureValidation, "bad"))
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceCalls.WithLabelValues("numerics", "numeric.jacobi", "validation")))

	assert.NotPanics(t, func() {
		NewTimer(nil, "numerics", "numeric.jacobi").Stop(types.Succeed(1.0, 0, nil, nil, "ok"))
	})
}

func TestMiddlewareSkipsScrapes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(prometheus.NewRegistry())
	r := gin.New()
	r.Use(Middleware(m))
	r.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, int64(0), m.Snapshot().TotalRequests)
}

func TestWSConnections(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.IncWSConnections()
	m.IncWSConnections()
	m.DecWSConnections()
	m.RecordWSMessage("in", "solve")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSConnections))
	assert.Equal(t, int64(1), m.Snapshot().ActiveConnections)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSMessages.WithLabelValues("in", "solve")))
}

func TestSeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}
