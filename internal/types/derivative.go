package types

// SamplePoint is one (x, f(x)) pair consumed by a stencil
type SamplePoint struct {
	X  float64 `json:"x"`
	FX float64 `json:"f(x)"`
}

// PointDerivative is the derivative estimate at a single point.
// Derivative is nil when the point could not be computed; Error then explains why.
type PointDerivative struct {
	X          float64       `json:"x"`
	Derivative *float64      `json:"derivative"`
	PointsUsed []SamplePoint `json:"points_used,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// OK reports whether the point computed successfully
func (p PointDerivative) OK() bool {
	return p.Derivative != nil
}

// Derivatives is the payload of a finite-difference call
type Derivatives struct {
	Method string            `json:"method"`
	Order  int               `json:"order"`
	Step   float64           `json:"h"`
	Points []PointDerivative `json:"points"`
}

// Values returns the derivative of each point, nil where a point failed
func (d Derivatives) Values() []*float64 {
	out := make([]*float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Derivative
	}
	return out
}
