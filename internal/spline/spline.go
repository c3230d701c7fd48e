// Package spline implements the cubic B-spline smoothing engine: node
// placement from a cutoff wavelength, basis construction over a clamped
// knot vector, least-squares normal equations with endpoint boundary
// conditions, a banded Cholesky solve, and curve evaluation.
//
// The engine is purely numerical. It performs no I/O and holds no global
// state; diagnostics, when wanted, are written to an injected io.Writer.
package spline

import "errors"

// Spline order and degree. The engine is cubic only.
const (
	// Order is the B-spline order (degree + 1).
	Order = 4

	// Degree is the polynomial degree of each basis piece.
	Degree = 3
)

const (
	// MinNodes is the minimum number of distinct nodes (breakpoints
	// including both endpoints) for a valid cubic basis.
	MinNodes = 3

	// minIntervals is MinNodes expressed as knot intervals.
	minIntervals = MinNodes - 1

	// DefaultNodeRatio is the knot spacing as a fraction of the cutoff
	// wavelength. Half a wavelength per interval gives the basis enough
	// intervals to represent one full period at the cutoff scale.
	DefaultNodeRatio = 0.5
)

// Boundary selects the endpoint condition applied to a fit. Exactly one
// condition is active per fit; it constrains the curve at both ends of
// the domain.
type Boundary int

const (
	// ZeroEndpoints forces the curve value to zero at both endpoints.
	ZeroEndpoints Boundary = iota

	// ZeroFirstDerivative forces the slope to zero at both endpoints.
	ZeroFirstDerivative

	// ZeroSecondDerivative forces the curvature to zero at both
	// endpoints.
	ZeroSecondDerivative
)

// Errors reported by the engine.
var (
	// ErrInvalidDomain indicates a degenerate or insufficient x range.
	ErrInvalidDomain = errors.New("invalid sample domain")

	// ErrInvalidWavelength indicates a non-positive cutoff wavelength
	// with no explicit node count to fall back on.
	ErrInvalidWavelength = errors.New("invalid cutoff wavelength")

	// ErrSampleOutOfDomain indicates a basis evaluation request outside
	// the knot range.
	ErrSampleOutOfDomain = errors.New("sample outside spline domain")

	// ErrSingularSystem indicates the banded factorization hit a
	// non-positive pivot.
	ErrSingularSystem = errors.New("singular normal equations")

	// ErrInvalidBoundary indicates an out-of-range boundary-condition
	// selector.
	ErrInvalidBoundary = errors.New("invalid boundary condition")
)
