package numerics

import (
	"context"
	"fmt"
	"time"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/expr"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/finitediff"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/jacobi"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/regulafalsi"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/service"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"go.uber.org/zap"
)

// ServiceID prefixes every tool of this provider
const ServiceID = "numeric"

// Tool IDs
const (
	ToolJacobi      = "numeric.jacobi"
	ToolDominance   = "numeric.dominance"
	ToolRegulaFalsi = "numeric.regulaFalsi"
	ToolForward     = "numeric.forward"
	ToolBackward    = "numeric.backward"
	ToolCentral     = "numeric.central"
	ToolEvaluate    = "numeric.evaluate"
)

// Provider exposes the numeric engines as registry tools and as typed
// methods for the HTTP handlers. Engines are rebuilt from the config
// source on every call so a reload takes effect immediately.
type Provider struct {
	source  *config.Source
	logger  *logging.Logger
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
}

// Option customizes a Provider
type Option func(*Provider)

// WithLogger sets the outcome logger
func WithLogger(l *logging.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// WithMetrics records run metrics
func WithMetrics(m *monitoring.Metrics) Option {
	return func(p *Provider) { p.metrics = m }
}

// WithTracer wraps each run in a span
func WithTracer(t *tracing.Tracer) Option {
	return func(p *Provider) { p.tracer = t }
}

// NewProvider creates the numerics provider. A nil source uses built-in defaults.
func NewProvider(src *config.Source, opts ...Option) *Provider {
	if src == nil {
		src = config.NewStaticSource(config.Defaults())
	}
	p := &Provider{source: src, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Source returns the config source backing the provider
func (p *Provider) Source() *config.Source {
	return p.source
}

// Execute routes a registry call to the matching engine
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (types.Outcome, error) {
	switch toolID {
	case ToolJacobi:
		req, err := jacobiRequest(params)
		if err != nil {
			return nil, err
		}
		return p.Jacobi(ctx, req), nil

	case ToolDominance:
		A, ok := GetMatrix(params, "matrix_a")
		if !ok {
			return nil, missing("matrix_a", "matrix")
		}
		return p.Dominance(ctx, A), nil

	case ToolRegulaFalsi:
		req, err := rootRequest(params)
		if err != nil {
			return nil, err
		}
		return p.RegulaFalsi(ctx, req), nil

	case ToolForward, ToolBackward, ToolCentral:
		req, err := diffRequest(finitediff.Method(toolID[len(ServiceID)+1:]), params)
		if err != nil {
			return nil, err
		}
		return p.Differentiate(ctx, req), nil

	case ToolEvaluate:
		fn, ok := GetString(params, "function")
		if !ok {
			return nil, missing("function", "string")
		}
		xs, ok := GetNumbers(params, "x_values")
		if !ok {
			x, ok := GetNumber(params, "x")
			if !ok {
				return nil, missing("x_values", "array")
			}
			xs = []float64{x}
		}
		return p.Evaluate(ctx, fn, xs), nil

	default:
		return nil, fmt.Errorf("%w: %s", service.ErrToolNotFound, toolID)
	}
}

// Jacobi solves Ax = b and annotates the result with the dominance check and residual
func (p *Provider) Jacobi(ctx context.Context, req jacobi.Request) types.JacobiReport {
	var report types.JacobiReport
	p.run(ctx, "jacobi", func() types.Outcome {
		report.Result = jacobi.NewSolver(p.source.JacobiConfig()).Solve(req)
		report.DiagonalDominance, report.DominanceMessage = jacobi.CheckDominance(req.A)
		if len(report.Output) > 0 && len(report.Output) == len(req.B) {
			report.Residual = types.Ptr(jacobi.Residual(req.A, report.Output, req.B))
		}
		return report
	})
	return report
}

// Dominance runs the standalone diagonal dominance check
func (p *Provider) Dominance(ctx context.Context, A [][]float64) types.Result[types.Dominance] {
	var res types.Result[types.Dominance]
	p.run(ctx, "dominance", func() types.Outcome {
		if !isSquare(A) {
			res = types.Reject[types.Dominance](types.FailureValidation, "Matrix A must be square")
			return res
		}
		dominant, msg := jacobi.CheckDominance(A)
		res = types.Succeed(types.Dominance{Dominant: dominant, Message: msg}, 0, nil, nil, msg)
		return res
	})
	return res
}

// RegulaFalsi finds one bracketed root
func (p *Provider) RegulaFalsi(ctx context.Context, req regulafalsi.Request) types.Result[*float64] {
	var res types.Result[*float64]
	p.run(ctx, "regula_falsi", func() types.Outcome {
		res = regulafalsi.NewFinder(p.source.RegulaFalsiConfig()).FindRoot(req)
		return res
	})
	return res
}

// Differentiate estimates derivatives with the requested stencil
func (p *Provider) Differentiate(ctx context.Context, req finitediff.Request) types.Result[types.Derivatives] {
	var res types.Result[types.Derivatives]
	p.run(ctx, string(req.Method)+"_difference", func() types.Outcome {
		res = finitediff.NewEngine(p.source.FiniteDiffConfig()).Differentiate(req)
		return res
	})
	return res
}

// Evaluate computes f at each x. The first failing point fails the call.
func (p *Provider) Evaluate(ctx context.Context, src string, xs []float64) types.Result[[]float64] {
	var res types.Result[[]float64]
	p.run(ctx, "evaluate", func() types.Outcome {
		res = evaluate(src, xs)
		return res
	})
	return res
}

func evaluate(src string, xs []float64) types.Result[[]float64] {
	e, err := expr.Compile(src)
	if err != nil {
		return types.Reject[[]float64](types.FailureEvaluation, "Error: "+err.Error())
	}
	values := make([]float64, len(xs))
	for i, x := range xs {
		if values[i], err = e.Eval(x); err != nil {
			return types.Reject[[]float64](types.FailureEvaluation,
				fmt.Sprintf("Error at x = %g: %v", x, err))
		}
	}
	return types.Succeed(values, 0, nil, nil, fmt.Sprintf("Evaluated %s at %d points", e.Source(), len(xs)))
}

// run instruments one engine call with a span, metrics and an outcome log
func (p *Provider) run(ctx context.Context, method string, fn func() types.Outcome) {
	var span *tracing.Span
	if p.tracer != nil {
		span, ctx = p.tracer.StartSpan(ctx, "numeric."+method)
	}

	start := time.Now()
	outcome := fn()
	elapsed := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordRun(method, outcome, elapsed)
	}

	fields := []zap.Field{}
	if traceID := tracing.GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", string(traceID)))
	}
	p.logger.Outcome(method, outcome, elapsed, fields...)

	if span != nil {
		span.SetTag("success", fmt.Sprint(outcome.Succeeded()))
		span.SetTag("iterations", fmt.Sprint(outcome.StepCount()))
		if reason := outcome.Reason(); reason != "" {
			span.SetTag("failure", string(reason))
		}
		span.Finish()
		p.tracer.Submit(span)
	}
}

func jacobiRequest(params map[string]interface{}) (jacobi.Request, error) {
	var req jacobi.Request
	var ok bool
	var err error

	if req.A, ok = GetMatrix(params, "matrix_a"); !ok {
		return req, missing("matrix_a", "matrix")
	}
	if req.B, ok = GetNumbers(params, "vector_b"); !ok {
		return req, missing("vector_b", "array")
	}
	if req.X0, err = optionalNumbers(params, "initial_guess"); err != nil {
		return req, err
	}
	if req.MaxIterations, err = optionalInt(params, "max_iterations"); err != nil {
		return req, err
	}
	req.Tolerance, err = optionalNumber(params, "tolerance")
	return req, err
}

func rootRequest(params map[string]interface{}) (regulafalsi.Request, error) {
	var req regulafalsi.Request
	var ok bool
	var err error

	if req.Expression, ok = GetString(params, "function"); !ok {
		return req, missing("function", "string")
	}
	if req.A, ok = GetNumber(params, "a"); !ok {
		return req, missing("a", "number")
	}
	if req.B, ok = GetNumber(params, "b"); !ok {
		return req, missing("b", "number")
	}
	if req.MaxIterations, err = optionalInt(params, "max_iterations"); err != nil {
		return req, err
	}
	req.Tolerance, err = optionalNumber(params, "tolerance")
	return req, err
}

func diffRequest(method finitediff.Method, params map[string]interface{}) (finitediff.Request, error) {
	req := finitediff.Request{Method: method, Order: 1}
	var ok bool
	var err error

	if req.Points, ok = GetNumbers(params, "x_values"); !ok {
		return req, missing("x_values", "array")
	}
	req.Expression, _ = GetString(params, "function")
	if req.Samples, err = optionalNumbers(params, "y_values"); err != nil {
		return req, err
	}
	order, err := optionalInt(params, "order")
	if err != nil {
		return req, err
	}
	if order != nil {
		req.Order = *order
	}
	req.Step, err = optionalNumber(params, "h")
	return req, err
}

func isSquare(A [][]float64) bool {
	if len(A) == 0 {
		return false
	}
	for _, row := range A {
		if len(row) != len(A) {
			return false
		}
	}
	return true
}
