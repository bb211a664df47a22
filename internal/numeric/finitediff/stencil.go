package finitediff

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
)

// Method selects which side of x a stencil samples
type Method string

const (
	Forward  Method = "forward"
	Backward Method = "backward"
	Central  Method = "central"
)

// Methods lists the supported difference schemes
var Methods = []Method{Forward, Backward, Central}

// Valid reports whether m is a supported method
func (m Method) Valid() bool {
	switch m {
	case Forward, Backward, Central:
		return true
	}
	return false
}

// nominalStep is only recorded on the formulas; callers always pass h.
const nominalStep = 0.01

// stencils holds one formula per method and order. Locations are in units of
// h and sorted ascending; zero coefficients are omitted.
var stencils = map[Method][2]fd.Formula{
	Forward: {
		{Stencil: []fd.Point{{Loc: 0, Coeff: -1}, {Loc: 1, Coeff: 1}}, Derivative: 1, Step: nominalStep},
		{Stencil: []fd.Point{{Loc: 0, Coeff: 1}, {Loc: 1, Coeff: -2}, {Loc: 2, Coeff: 1}}, Derivative: 2, Step: nominalStep},
	},
	Backward: {
		{Stencil: []fd.Point{{Loc: -1, Coeff: -1}, {Loc: 0, Coeff: 1}}, Derivative: 1, Step: nominalStep},
		{Stencil: []fd.Point{{Loc: -2, Coeff: 1}, {Loc: -1, Coeff: -2}, {Loc: 0, Coeff: 1}}, Derivative: 2, Step: nominalStep},
	},
	Central: {
		{Stencil: []fd.Point{{Loc: -1, Coeff: -0.5}, {Loc: 1, Coeff: 0.5}}, Derivative: 1, Step: nominalStep},
		{Stencil: []fd.Point{{Loc: -1, Coeff: 1}, {Loc: 0, Coeff: -2}, {Loc: 1, Coeff: 1}}, Derivative: 2, Step: nominalStep},
	},
}

// Formula returns the stencil for method and order (1 or 2)
func Formula(m Method, order int) (fd.Formula, error) {
	forms, ok := stencils[m]
	if !ok {
		return fd.Formula{}, fmt.Errorf("finitediff: unknown method %q", m)
	}
	if order != 1 && order != 2 {
		return fd.Formula{}, fmt.Errorf("finitediff: order %d not supported", order)
	}
	return forms[order-1], nil
}

// reach returns the most negative and most positive stencil offsets
func reach(f fd.Formula) (lo, hi int) {
	for _, p := range f.Stencil {
		loc := int(p.Loc)
		if loc < lo {
			lo = loc
		}
		if loc > hi {
			hi = loc
		}
	}
	return lo, hi
}

// apply combines stencil samples into a derivative estimate. fx[k] is the
// function value at location f.Stencil[k].
func apply(f fd.Formula, fx []float64, h float64) float64 {
	var sum float64
	for k, p := range f.Stencil {
		sum += p.Coeff * fx[k]
	}
	scale := h
	if f.Derivative == 2 {
		scale = h * h
	}
	return sum / scale
}

func ordinal(order int) string {
	if order == 2 {
		return "second order "
	}
	return ""
}

func shortage(m Method, order int) string {
	return fmt.Sprintf("Not enough points for %s%s difference", ordinal(order), m)
}
