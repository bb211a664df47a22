package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetricsJSON returns the metrics snapshot for dashboards that do not scrape Prometheus
func (h *Handlers) MetricsJSON(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "metrics disabled"})
		return
	}
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
