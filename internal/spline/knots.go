package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Plan is a validated knot layout over a sample domain.
type Plan struct {
	// Nodes are the distinct breakpoints, uniformly spaced over
	// [xmin, xmax] with both endpoints included.
	Nodes []float64

	// Knots is the clamped knot vector: Nodes with each endpoint
	// repeated to multiplicity Order.
	Knots []float64
}

// BasisCount returns the number of cubic basis functions over the plan.
func (p *Plan) BasisCount() int {
	return len(p.Knots) - Order
}

// PlanKnots derives a knot layout for the domain [xmin, xmax].
//
// When numNodes > 0 it is used directly as the distinct node count.
// Otherwise the node spacing is nodeRatio*wavelength (DefaultNodeRatio
// when nodeRatio is zero), rounded up to whole intervals. Wavelengths
// longer than the domain span clamp to the coarsest valid layout of
// MinNodes nodes.
func PlanKnots(xmin, xmax, wavelength float64, numNodes int, nodeRatio float64) (*Plan, error) {
	if xmax <= xmin {
		return nil, fmt.Errorf("%w: x range [%g, %g] is empty", ErrInvalidDomain, xmin, xmax)
	}

	var intervals int
	if numNodes > 0 {
		if numNodes < MinNodes {
			return nil, fmt.Errorf("%w: %d nodes requested, cubic basis needs at least %d", ErrInvalidDomain, numNodes, MinNodes)
		}
		intervals = numNodes - 1
	} else {
		if wavelength <= 0 {
			return nil, fmt.Errorf("%w: wavelength %g must be positive", ErrInvalidWavelength, wavelength)
		}
		if nodeRatio == 0 {
			nodeRatio = DefaultNodeRatio
		}
		if nodeRatio < 0 {
			return nil, fmt.Errorf("%w: node ratio %g must be positive", ErrInvalidWavelength, nodeRatio)
		}

		spacing := nodeRatio * wavelength
		intervals = int(math.Ceil((xmax - xmin) / spacing))
		if intervals < minIntervals {
			intervals = minIntervals
		}
	}

	nodes := floats.Span(make([]float64, intervals+1), xmin, xmax)

	// Clamp the endpoints to multiplicity Order.
	knots := make([]float64, 0, len(nodes)+2*Degree)
	for i := 0; i < Degree; i++ {
		knots = append(knots, xmin)
	}
	knots = append(knots, nodes...)
	for i := 0; i < Degree; i++ {
		knots = append(knots, xmax)
	}

	return &Plan{Nodes: nodes, Knots: knots}, nil
}
