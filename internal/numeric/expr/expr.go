package expr

import "strings"

// Expr is a compiled single-variable expression. It is immutable and safe
// for concurrent use.
type Expr struct {
	src  string
	root node
}

// Compile parses src against the fixed vocabulary. Unknown names are rejected
// here, before any evaluation takes place.
func Compile(src string) (*Expr, error) {
	src = strings.TrimSpace(src)
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, root: root}, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// package-level fixtures.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	return e.root.eval(x, e.src)
}

// Source returns the trimmed source text.
func (e *Expr) Source() string {
	return e.src
}

// Func adapts the expression to a plain function. Evaluation failures map
// to NaN, so callers that need the error should use Eval.
func (e *Expr) Func() func(float64) float64 {
	return func(x float64) float64 {
		v, err := e.Eval(x)
		if err != nil {
			return nan()
		}
		return v
	}
}

// Evaluate compiles src and evaluates it once at x.
func Evaluate(src string, x float64) (float64, error) {
	e, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(x)
}
