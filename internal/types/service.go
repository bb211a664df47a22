package types

// Category represents service categories
type Category string

const (
	CategoryLinear     Category = "linear"
	CategoryRoots      Category = "roots"
	CategoryCalculus   Category = "calculus"
	CategoryExpression Category = "expression"
	CategoryNumerics   Category = "numerics"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Context provides execution context for services
type Context struct {
	RequestID *string `json:"request_id,omitempty"`
	ClientIP  *string `json:"client_ip,omitempty"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type   string                 `json:"type"`
	ToolID string                 `json:"tool_id,omitempty"`
	Params map[string]interface{} `json:"params,omitempty"`
}
