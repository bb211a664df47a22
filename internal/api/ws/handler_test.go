package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/providers/numerics"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T) (*websocket.Conn, *monitoring.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := service.NewRegistry()
	require.NoError(t, reg.Register(numerics.NewProvider(nil)))
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())

	router := gin.New()
	router.GET("/stream", NewHandler(reg, metrics, nil).HandleConnection)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var hello map[string]interface{}
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, TypeSystem, hello["type"])
	_, err = uuid.Parse(hello["session_id"].(string))
	require.NoError(t, err)

	return conn, metrics
}

func read(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestPing(t *testing.T) {
	conn, metrics := dial(t)
	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "ping"}))
	assert.Equal(t, TypePong, read(t, conn)["type"])
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.WSConnections))
}

func TestSolveStreamsSteps(t *testing.T) {
	conn, _ := dial(t)
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":    "solve",
		"tool_id": "numeric.regulaFalsi",
		"params":  map[string]interface{}{"function": "x**2 - 4", "a": 0, "b": 3},
	}))

	steps := 0
	for {
		msg := read(t, conn)
		if msg["type"] == TypeStep {
			steps++
			step := msg["step"].(map[string]interface{})
			assert.Equal(t, float64(steps), step["iteration"])
			continue
		}
		require.Equal(t, TypeResult, msg["type"])
		result := msg["result"].(map[string]interface{})
		assert.Equal(t, true, result["success"])
		assert.Equal(t, float64(steps), result["iterations"])
		assert.InDelta(t, 2.0, result["output"].(float64), 1e-5)
		break
	}
	assert.Greater(t, steps, 0)
}

func TestSolveFailureStillReportsResult(t *testing.T) {
	conn, _ := dial(t)
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":    "solve",
		"tool_id": "numeric.jacobi",
		"params": map[string]interface{}{
			"matrix_a": []interface{}{[]interface{}{0.0, 1.0}, []interface{}{1.0, 0.0}},
			"vector_b": []interface{}{1.0, 1.0},
		},
	}))

	msg := read(t, conn)
	require.Equal(t, TypeResult, msg["type"])
	result := msg["result"].(map[string]interface{})
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Matrix has zero diagonal elements", result["message"])
}

func TestErrorsKeepConnectionOpen(t *testing.T) {
	conn, _ := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "solve", "tool_id": "bad id"}))
	assert.Equal(t, TypeError, read(t, conn)["type"])

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "solve", "tool_id": "numeric.jacobi", "params": map[string]interface{}{}}))
	msg := read(t, conn)
	assert.Equal(t, TypeError, msg["type"])
	assert.Contains(t, msg["message"], "matrix_a")

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "dance"}))
	assert.Equal(t, "unknown message type", read(t, conn)["message"])

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "ping"}))
	assert.Equal(t, TypePong, read(t, conn)["type"])
}

func TestUnknownTypesShareOneSeries(t *testing.T) {
	conn, metrics := dial(t)

	for _, typ := range []string{"dance", "x-7f3a"} {
		require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": typ}))
		assert.Equal(t, TypeError, read(t, conn)["type"])
	}

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "ping"}))
	assert.Equal(t, TypePong, read(t, conn)["type"])

	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.WSMessages.WithLabelValues("in", TypeUnknown)))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.WSMessages.WithLabelValues("in", TypePing)))
	// in/unknown, in/ping, out/system, out/error, out/pong
	assert.Eventually(t, func() bool {
		return promtest.CollectAndCount(metrics.WSMessages) == 5
	}, time.Second, 10*time.Millisecond)
}
