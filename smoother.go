package splinesmoother

import (
	"errors"
	"fmt"
	"io"

	"github.com/tphakala/go-bspline-smoother/internal/spline"
)

// BoundaryCondition selects the endpoint constraint applied to a fit.
// Exactly one condition is active per fit and it holds at both ends of
// the domain.
type BoundaryCondition int

const (
	// BoundaryZeroEndpoints forces the curve value to zero at both
	// domain endpoints.
	BoundaryZeroEndpoints BoundaryCondition = iota

	// BoundaryZeroFirstDerivative forces the slope to zero at both
	// domain endpoints.
	BoundaryZeroFirstDerivative

	// BoundaryZeroSecondDerivative forces the curvature to zero at both
	// domain endpoints. This is the least intrusive condition and the
	// usual default for smoothing.
	BoundaryZeroSecondDerivative
)

// String returns the condition name.
func (bc BoundaryCondition) String() string {
	switch bc {
	case BoundaryZeroEndpoints:
		return "zero-endpoints"
	case BoundaryZeroFirstDerivative:
		return "zero-first-derivative"
	case BoundaryZeroSecondDerivative:
		return "zero-second-derivative"
	default:
		return fmt.Sprintf("boundary(%d)", int(bc))
	}
}

// Validate rejects out-of-range boundary selectors.
func (bc BoundaryCondition) Validate() error {
	if bc < BoundaryZeroEndpoints || bc > BoundaryZeroSecondDerivative {
		return fmt.Errorf("%w: %d", ErrInvalidBoundary, int(bc))
	}
	return nil
}

// ParseBoundaryCondition maps a derivative degree (0, 1 or 2) to the
// condition that zeroes that derivative at the endpoints, matching the
// conventional CLI encoding.
func ParseBoundaryCondition(degree int) (BoundaryCondition, error) {
	bc := BoundaryCondition(degree)
	if err := bc.Validate(); err != nil {
		return 0, err
	}
	return bc, nil
}

// Common errors returned by the smoother.
var (
	// ErrInvalidDomain indicates a degenerate or insufficient x range:
	// fewer than two samples, non-increasing abscissas, or too few nodes.
	ErrInvalidDomain = spline.ErrInvalidDomain

	// ErrInvalidWavelength indicates a non-positive cutoff wavelength
	// with no explicit node count given.
	ErrInvalidWavelength = spline.ErrInvalidWavelength

	// ErrSampleOutOfDomain indicates a basis evaluation request outside
	// the knot range.
	ErrSampleOutOfDomain = spline.ErrSampleOutOfDomain

	// ErrSingularSystem indicates the banded factorization failed; the
	// sample distribution cannot support the requested node density.
	ErrSingularSystem = spline.ErrSingularSystem

	// ErrDimensionMismatch indicates y or weights length differs from
	// the basis sample count.
	ErrDimensionMismatch = errors.New("sample count mismatch")

	// ErrInvalidBoundary indicates an out-of-range boundary-condition
	// selector.
	ErrInvalidBoundary = spline.ErrInvalidBoundary

	// ErrInvalidWeight indicates a negative sample weight.
	ErrInvalidWeight = errors.New("invalid sample weight")
)

// Config holds smoothing configuration.
type Config struct {
	// Wavelength is the cutoff scale in x units: the shortest spatial
	// period the fitted curve fully represents. Variation below this
	// scale is attenuated. Must be positive unless NumNodes is set.
	Wavelength float64

	// NumNodes, when positive, fixes the distinct node count directly
	// and takes precedence over Wavelength.
	NumNodes int

	// NodeRatio is the knot spacing expressed as a fraction of the
	// wavelength. Zero means DefaultNodeRatio. Smaller values place
	// nodes more densely for a given wavelength.
	NodeRatio float64

	// DebugLog, when non-nil, receives human-readable diagnostics
	// (node counts, residual variance). It has no effect on numerical
	// results.
	DebugLog io.Writer
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.NumNodes < 0 {
		return fmt.Errorf("%w: node count %d must be non-negative", ErrInvalidDomain, c.NumNodes)
	}
	if c.NumNodes == 0 && c.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength %g must be positive when no node count is given", ErrInvalidWavelength, c.Wavelength)
	}
	if c.NodeRatio < 0 {
		return fmt.Errorf("%w: node ratio %g must be positive", ErrInvalidWavelength, c.NodeRatio)
	}
	return nil
}

func debugf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "splinesmoother: "+format+"\n", args...)
}
