package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/service"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/shared/utils"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message types
const (
	TypeSystem = "system"
	TypeSolve  = "solve"
	TypeStep   = "step"
	TypeResult = "result"
	TypePing   = "ping"
	TypePong   = "pong"
	TypeError  = "error"

	// TypeUnknown labels inbound frames of any other type
	TypeUnknown = "unknown"
)

const solveTimeout = 30 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler streams solver iteration trails over WebSocket
type Handler struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler. metrics may be nil.
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// session is one live connection
type session struct {
	id   string
	conn *websocket.Conn
	h    *Handler
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(utils.MaxMessageSize)

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	s := &session{id: uuid.NewString(), conn: conn, h: h}
	log := h.logger.With(zap.String("session_id", s.id))
	log.Info("WebSocket session opened")
	defer log.Info("WebSocket session closed")

	reqCtx := c.Request.Context()

	s.send(map[string]interface{}{
		"type":       TypeSystem,
		"session_id": s.id,
		"message":    "Connected to Numerical Methods stream",
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("WebSocket read error", zap.Error(err))
			}
			break
		}
		h.record("in", inboundLabel(msg.Type))

		switch msg.Type {
		case TypeSolve:
			s.solve(reqCtx, msg)
		case TypePing:
			s.send(map[string]interface{}{"type": TypePong})
		default:
			s.sendError("unknown message type")
		}
	}
}

// solve runs one tool and emits a step frame per iteration record, then the result
func (s *session) solve(reqCtx context.Context, msg types.WSMessage) {
	if err := utils.ValidateToolID(msg.ToolID); err != nil {
		s.sendError(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx, solveTimeout)
	defer cancel()

	sessionID := s.id
	outcome, err := s.h.registry.Execute(ctx, msg.ToolID, msg.Params, &types.Context{RequestID: &sessionID})
	if err != nil {
		s.sendError(err.Error())
		return
	}

	for _, step := range outcome.Trail() {
		if err := s.send(map[string]interface{}{
			"type":    TypeStep,
			"tool_id": msg.ToolID,
			"step":    step,
		}); err != nil {
			return
		}
	}

	s.send(map[string]interface{}{
		"type":      TypeResult,
		"tool_id":   msg.ToolID,
		"result":    outcome,
		"timestamp": time.Now().Unix(),
	})
}

func (s *session) send(data map[string]interface{}) error {
	payload, err := sonic.Marshal(data)
	if err != nil {
		return s.sendError("failed to encode message: " + err.Error())
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return err
	}
	s.h.record("out", data["type"].(string))
	return nil
}

func (s *session) sendError(msg string) error {
	payload, _ := sonic.Marshal(map[string]interface{}{
		"type":      TypeError,
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
	s.h.record("out", TypeError)
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

// inboundLabel bounds the metric label set to the types a client may send
func inboundLabel(msgType string) string {
	switch msgType {
	case TypeSolve, TypePing:
		return msgType
	default:
		return TypeUnknown
	}
}

func (h *Handler) record(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}
