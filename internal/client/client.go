package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	apihttp "github.com/GriffinCanCode/NumericalMethods/backend/internal/api/http"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

var (
	// ErrBadRequest means the server rejected the request body (400)
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound means the route or tool does not exist (404)
	ErrNotFound = errors.New("not found")
	// ErrRateLimited means the server throttled the caller (429)
	ErrRateLimited = errors.New("rate limited")
	// ErrServer covers every other non-2xx status
	ErrServer = errors.New("server error")
)

// Config configures a Client
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// RateLimit is requests per second; zero or less means unlimited
	RateLimit float64
	UserAgent string
}

// DefaultConfig returns production settings for baseURL
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		Timeout:      30 * time.Second,
		RetryMax:     3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 10 * time.Second,
		UserAgent:    "numctl/1.0",
	}
}

// Run is a decoded Result. S is the iteration record type of the method;
// methods without a trail use json.RawMessage.
type Run[T, S any] struct {
	Success    bool              `json:"success"`
	Output     T                 `json:"output"`
	Iterations int               `json:"iterations"`
	Error      *float64          `json:"error"`
	Log        []S               `json:"iteration_log"`
	Message    string            `json:"message"`
	Failure    types.FailureKind `json:"failure,omitempty"`
}

// JacobiRun is the decoded body of /api/jacobi
type JacobiRun struct {
	Run[[]float64, types.JacobiStep]
	DiagonalDominance bool     `json:"diagonal_dominance"`
	DominanceMessage  string   `json:"dominance_message"`
	Residual          *float64 `json:"residual,omitempty"`
}

type (
	RootRun      = Run[*float64, types.RegulaFalsiStep]
	DiffRun      = Run[types.Derivatives, json.RawMessage]
	EvalRun      = Run[[]float64, json.RawMessage]
	DominanceRun = Run[types.Dominance, json.RawMessage]
	ToolRun      = Run[json.RawMessage, json.RawMessage]
)

// Client talks to the numerics HTTP API with retries, client-side rate
// limiting and a circuit breaker
type Client struct {
	resty   *resty.Client
	breaker *resilience.Breaker

	mu      sync.RWMutex
	limiter *rate.Limiter
}

type apiError struct {
	Message string `json:"message"`
}

// New creates a client for cfg.BaseURL
func New(cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil
	// Hand the final response back so status mapping sees the real code
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	r := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetError(&apiError{}).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)
	if cfg.UserAgent != "" {
		r.SetHeader("User-Agent", cfg.UserAgent)
	}

	breaker := resilience.New("numerics-api", resilience.Settings{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrBadRequest) || errors.Is(err, ErrNotFound)
		},
	})

	c := &Client{resty: r, breaker: breaker}
	c.SetRateLimit(cfg.RateLimit)
	return c
}

// SetRateLimit configures the client-side limit in requests per second
func (c *Client) SetRateLimit(rps float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rps <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
		return
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// BreakerState returns the current circuit breaker state
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

// Jacobi solves A x = b on the server
func (c *Client) Jacobi(ctx context.Context, req apihttp.JacobiRequest) (JacobiRun, error) {
	return call[JacobiRun](ctx, c, http.MethodPost, "/api/jacobi", req)
}

// Dominance checks strict diagonal dominance of A
func (c *Client) Dominance(ctx context.Context, a [][]float64) (DominanceRun, error) {
	return call[DominanceRun](ctx, c, http.MethodPost, "/api/dominance", apihttp.DominanceRequest{MatrixA: a})
}

// RegulaFalsi finds a root of req.Function in [a, b]
func (c *Client) RegulaFalsi(ctx context.Context, req apihttp.RootRequest) (RootRun, error) {
	return call[RootRun](ctx, c, http.MethodPost, "/api/regula-falsi", req)
}

// Differentiate runs the forward, backward or central difference
func (c *Client) Differentiate(ctx context.Context, method string, req apihttp.DiffRequest) (DiffRun, error) {
	return call[DiffRun](ctx, c, http.MethodPost, "/api/finite-difference/"+method, req)
}

// Evaluate evaluates an expression at each x
func (c *Client) Evaluate(ctx context.Context, req apihttp.EvaluateRequest) (EvalRun, error) {
	return call[EvalRun](ctx, c, http.MethodPost, "/api/evaluate", req)
}

// Execute runs any registered tool by ID
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}) (ToolRun, error) {
	return call[ToolRun](ctx, c, http.MethodPost, "/services/execute", types.ExecuteRequest{ToolID: toolID, Params: params})
}

// Health returns the server health document
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	return call[map[string]interface{}](ctx, c, http.MethodGet, "/health", nil)
}

func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, error) {
	return resilience.Call(ctx, c.breaker, func(ctx context.Context) (T, error) {
		var out T

		c.mu.RLock()
		limiter := c.limiter
		c.mu.RUnlock()
		if err := limiter.Wait(ctx); err != nil {
			return out, fmt.Errorf("rate limit wait: %w", err)
		}

		req := c.resty.R().SetContext(ctx).SetResult(&out)
		if body != nil {
			req.SetBody(body)
		}
		tracing.Inject(ctx, req.Header)

		resp, err := req.Execute(method, path)
		if err != nil {
			return out, fmt.Errorf("%s %s: %w", method, path, err)
		}
		if err := statusError(resp); err != nil {
			return out, fmt.Errorf("%s %s: %w", method, path, err)
		}
		return out, nil
	})
}

func statusError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	msg := resp.Status()
	if e, ok := resp.Error().(*apiError); ok && e.Message != "" {
		msg = e.Message
	}

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusTooManyRequests:
		kind = ErrRateLimited
	default:
		kind = ErrServer
	}
	return fmt.Errorf("%w: %s", kind, msg)
}
