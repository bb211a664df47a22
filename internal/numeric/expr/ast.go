package expr

import (
	"math"
)

// Variable is the single free variable an expression may reference.
const Variable = "x"

type node interface {
	eval(x float64, src string) (float64, error)
}

type numberNode struct {
	val float64
}

func (n numberNode) eval(float64, string) (float64, error) {
	return n.val, nil
}

type varNode struct{}

func (varNode) eval(x float64, _ string) (float64, error) {
	return x, nil
}

type unaryNode struct {
	neg     bool
	operand node
}

func (n unaryNode) eval(x float64, src string) (float64, error) {
	v, err := n.operand.eval(x, src)
	if err != nil {
		return 0, err
	}
	if n.neg {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op          tokenKind
	left, right node
}

func (n binaryNode) eval(x float64, src string) (float64, error) {
	l, err := n.left.eval(x, src)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(x, src)
	if err != nil {
		return 0, err
	}

	var v float64
	switch n.op {
	case tokPlus:
		v = l + r
	case tokMinus:
		v = l - r
	case tokStar:
		v = l * r
	case tokSlash:
		if r == 0 {
			return 0, domainError(src, "division by zero")
		}
		v = l / r
	case tokFloorDiv:
		if r == 0 {
			return 0, domainError(src, "integer division by zero")
		}
		v = math.Floor(l / r)
	case tokPercent:
		if r == 0 {
			return 0, domainError(src, "modulo by zero")
		}
		v = floorMod(l, r)
	case tokPow:
		if l == 0 && r < 0 {
			return 0, domainError(src, "zero raised to a negative power")
		}
		v = math.Pow(l, r)
	}
	return finite(v, src)
}

type callNode struct {
	name string
	fn   func(float64) (float64, string)
	arg  node
}

func (n callNode) eval(x float64, src string) (float64, error) {
	a, err := n.arg.eval(x, src)
	if err != nil {
		return 0, err
	}
	v, problem := n.fn(a)
	if problem != "" {
		return 0, domainError(src, "%s(%g): %s", n.name, a, problem)
	}
	return finite(v, src)
}

// floorMod returns l - r*floor(l/r), so the result takes the sign of r
func floorMod(l, r float64) float64 {
	m := math.Mod(l, r)
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}

func nan() float64 { return math.NaN() }

func finite(v float64, src string) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domainError(src, "result is not finite")
	}
	return v, nil
}

// functions is the complete callable vocabulary. Each entry returns a
// non-empty problem string when the argument is outside its domain.
var functions = map[string]func(float64) (float64, string){
	"sin": func(a float64) (float64, string) { return math.Sin(a), "" },
	"cos": func(a float64) (float64, string) { return math.Cos(a), "" },
	"tan": func(a float64) (float64, string) { return math.Tan(a), "" },
	"exp": func(a float64) (float64, string) { return math.Exp(a), "" },
	"abs": func(a float64) (float64, string) { return math.Abs(a), "" },
	"log": func(a float64) (float64, string) {
		if a <= 0 {
			return 0, "logarithm of a non-positive number"
		}
		return math.Log(a), ""
	},
	"sqrt": func(a float64) (float64, string) {
		if a < 0 {
			return 0, "square root of a negative number"
		}
		return math.Sqrt(a), ""
	},
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Vocabulary returns the sorted list of names an expression may use.
func Vocabulary() []string {
	return []string{"abs", "cos", "e", "exp", "log", "pi", "sin", "sqrt", "tan", Variable}
}
