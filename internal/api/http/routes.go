package http

import "github.com/gin-gonic/gin"

// Register mounts every REST route on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/metrics/json", h.MetricsJSON)

	// Service management
	r.GET("/services", h.ListServices)
	r.POST("/services/discover", h.DiscoverServices)
	r.POST("/services/execute", h.ExecuteService)

	api := r.Group("/api")
	api.POST("/jacobi", h.Jacobi)
	api.POST("/dominance", h.Dominance)
	api.POST("/regula-falsi", h.RegulaFalsi)
	api.POST("/finite-difference/:method", h.FiniteDifference)
	api.POST("/forward-fd", h.ForwardFD)
	api.POST("/backward-fd", h.BackwardFD)
	api.POST("/center-fd", h.CenterFD)
	api.POST("/evaluate", h.Evaluate)

	r.POST("/admin/config/reload", h.ReloadConfig)
}
