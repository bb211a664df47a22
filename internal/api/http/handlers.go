package http

import (
	"errors"
	"net/http"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/expr"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/providers/numerics"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/service"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/shared/utils"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version is reported by GET /
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry    *service.Registry
	numerics    *numerics.Provider
	metrics     *monitoring.Metrics
	logger      *logging.Logger
	allowReload bool
}

// Options configures the handler set
type Options struct {
	Registry    *service.Registry
	Numerics    *numerics.Provider
	Metrics     *monitoring.Metrics
	Logger      *logging.Logger
	AllowReload bool
}

// NewHandlers creates a new handler set
func NewHandlers(opts Options) *Handlers {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry:    opts.Registry,
		numerics:    opts.Numerics,
		metrics:     opts.Metrics,
		logger:      logger,
		allowReload: opts.AllowReload,
	}
}

// Root handles the landing endpoint
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Numerical Methods Calculator",
		"version": Version,
		"methods": []string{"jacobi", "regula-falsi", "forward-fd", "backward-fd", "center-fd"},
		"grammar": expr.Vocabulary(),
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	resp := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"config":           gin.H{"path": h.numerics.Source().Path()},
	}
	if h.metrics != nil {
		resp["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, resp)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")
	if err := utils.ValidateCategory(categoryStr); err != nil {
		badRequest(c, err)
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices ranks services against a free-text query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := utils.ValidateQuery(req.Query); err != nil {
		badRequest(c, err)
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": h.registry.Discover(req.Query, req.Limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := utils.ValidateToolID(req.ToolID); err != nil {
		badRequest(c, err)
		return
	}

	requestID := c.GetString("trace_id")
	clientIP := c.ClientIP()
	appCtx := &types.Context{RequestID: &requestID, ClientIP: &clientIP}

	timer := monitoring.NewTimer(h.metrics, "registry", req.ToolID)
	outcome, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrServiceNotFound) || errors.Is(err, service.ErrToolNotFound) {
			status = http.StatusNotFound
		}
		h.logger.Warn("Tool execution rejected", zap.String("tool_id", req.ToolID), zap.Error(err))
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}
	timer.Stop(outcome)

	render(c, http.StatusOK, outcome)
}

// ReloadConfig re-reads the numerics config file
func (h *Handlers) ReloadConfig(c *gin.Context) {
	if !h.allowReload {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "config reload is disabled"})
		return
	}

	src := h.numerics.Source()
	if err := src.Reload(); err != nil {
		h.logger.Error("Config reload failed", zap.String("path", src.Path()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	h.logger.Info("Config reloaded", zap.String("path", src.Path()))
	c.JSON(http.StatusOK, gin.H{"success": true, "config": src.Snapshot()})
}
