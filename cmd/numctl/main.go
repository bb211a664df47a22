package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	apihttp "github.com/GriffinCanCode/NumericalMethods/backend/internal/api/http"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/client"
	"github.com/bytedance/sonic"
	"github.com/kelseyhightower/envconfig"
)

// Env is read from NUMCTL_* variables
type Env struct {
	Server  string        `envconfig:"SERVER" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Retries int           `envconfig:"RETRIES" default:"3"`
}

// errFailed marks a numeric run that completed with success=false
var errFailed = errors.New("numeric run failed")

const usage = `usage: numctl <command> [flags]

commands:
  jacobi  -a '[[4,-1],[-1,4]]' -b '[5,0]' [-x0 '[0,0]'] [-max N] [-tol T]
  dominance -a '[[4,-1],[-1,4]]'
  root    -f 'x**2-4' -a 0 -b 3 [-max N] [-tol T]
  diff    -method forward|backward|central -f 'sin(x)' -x '[1]' [-order 1|2] [-h H]
  eval    -f 'x**2' -x '[1,2,3]'
  health
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var env Env
	if err := envconfig.Process("numctl", &env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch err := run(ctx, env, os.Args[1:], os.Stdout); {
	case err == nil:
	case errors.Is(err, errFailed):
		os.Exit(1)
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "numctl:", err)
		os.Exit(2)
	}
}

func run(ctx context.Context, env Env, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return flag.ErrHelp
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(out)
	server := fs.String("server", env.Server, "API base URL")

	var exec func(c *client.Client) (interface{}, bool, error)
	switch args[0] {
	case "jacobi":
		a := fs.String("a", "", "coefficient matrix as JSON")
		b := fs.String("b", "", "right-hand side as JSON")
		x0 := fs.String("x0", "", "initial guess as JSON")
		maxIter := fs.Int("max", 0, "iteration budget")
		tol := fs.Float64("tol", 0, "tolerance")
		exec = func(c *client.Client) (interface{}, bool, error) {
			req := apihttp.JacobiRequest{MaxIterations: intFlag(*maxIter), Tolerance: floatFlag(*tol)}
			if err := decode("a", *a, &req.MatrixA); err != nil {
				return nil, false, err
			}
			if err := decode("b", *b, &req.VectorB); err != nil {
				return nil, false, err
			}
			if *x0 != "" {
				if err := decode("x0", *x0, &req.InitialGuess); err != nil {
					return nil, false, err
				}
			}
			res, err := c.Jacobi(ctx, req)
			return res, res.Success, err
		}
	case "dominance":
		a := fs.String("a", "", "coefficient matrix as JSON")
		exec = func(c *client.Client) (interface{}, bool, error) {
			var A [][]float64
			if err := decode("a", *a, &A); err != nil {
				return nil, false, err
			}
			res, err := c.Dominance(ctx, A)
			return res, res.Success, err
		}
	case "root":
		fn := fs.String("f", "", "function of x")
		a := fs.Float64("a", 0, "left bracket")
		b := fs.Float64("b", 0, "right bracket")
		maxIter := fs.Int("max", 0, "iteration budget")
		tol := fs.Float64("tol", 0, "tolerance")
		exec = func(c *client.Client) (interface{}, bool, error) {
			res, err := c.RegulaFalsi(ctx, apihttp.RootRequest{
				Function:      *fn,
				A:             a,
				B:             b,
				MaxIterations: intFlag(*maxIter),
				Tolerance:     floatFlag(*tol),
			})
			return res, res.Success, err
		}
	case "diff":
		method := fs.String("method", "central", "forward, backward or central")
		fn := fs.String("f", "", "function of x")
		xs := fs.String("x", "", "points as JSON")
		ys := fs.String("y", "", "tabulated f(x) as JSON, used when -f is empty")
		order := fs.Int("order", 1, "derivative order (1 or 2)")
		h := fs.Float64("h", 0, "step size")
		exec = func(c *client.Client) (interface{}, bool, error) {
			req := apihttp.DiffRequest{Function: *fn, Order: order, H: floatFlag(*h)}
			if err := decode("x", *xs, &req.XValues); err != nil {
				return nil, false, err
			}
			if *ys != "" {
				if err := decode("y", *ys, &req.YValues); err != nil {
					return nil, false, err
				}
			}
			res, err := c.Differentiate(ctx, *method, req)
			return res, res.Success, err
		}
	case "eval":
		fn := fs.String("f", "", "function of x")
		xs := fs.String("x", "", "points as JSON")
		exec = func(c *client.Client) (interface{}, bool, error) {
			req := apihttp.EvaluateRequest{Function: *fn}
			if err := decode("x", *xs, &req.XValues); err != nil {
				return nil, false, err
			}
			res, err := c.Evaluate(ctx, req)
			return res, res.Success, err
		}
	case "health":
		exec = func(c *client.Client) (interface{}, bool, error) {
			res, err := c.Health(ctx)
			return res, err == nil, err
		}
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	cfg := client.DefaultConfig(*server)
	cfg.Timeout = env.Timeout
	cfg.RetryMax = env.Retries

	res, ok, err := exec(client.New(cfg))
	if err != nil {
		return err
	}

	data, err := sonic.ConfigStd.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(out, string(data))

	if !ok {
		return errFailed
	}
	return nil
}

func decode(name, raw string, v interface{}) error {
	if raw == "" {
		return fmt.Errorf("-%s is required", name)
	}
	if err := sonic.UnmarshalString(raw, v); err != nil {
		return fmt.Errorf("-%s: %w", name, err)
	}
	return nil
}

// Zero flag values fall back to the server's configured defaults
func intFlag(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func floatFlag(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
