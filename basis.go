package splinesmoother

import (
	"fmt"

	"github.com/tphakala/go-bspline-smoother/internal/spline"
)

// SplineBasis is the reusable half of a fit: the knot layout and cached
// basis values over one set of sample abscissas. Construction copies what
// it needs from x; the caller's slice is not retained.
//
// A successfully constructed basis is immutable and safe to share across
// goroutines: any number of fits against different y arrays may run
// concurrently from the same basis.
type SplineBasis struct {
	cfg   Config
	basis *spline.Basis
	ok    bool
}

// NewBasis constructs a basis over the strictly increasing abscissas x.
// The domain is [x[0], x[len(x)-1]]; node placement follows cfg.
func NewBasis(x []float64, cfg *Config) (*SplineBasis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is required", ErrInvalidWavelength)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(x) < minSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidDomain, minSamples, len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%g does not increase past x[%d]=%g", ErrInvalidDomain, i, x[i], i-1, x[i-1])
		}
	}

	plan, err := spline.PlanKnots(x[0], x[len(x)-1], cfg.Wavelength, cfg.NumNodes, cfg.NodeRatio)
	if err != nil {
		return nil, err
	}

	basis, err := spline.Build(x, plan)
	if err != nil {
		return nil, err
	}

	debugf(cfg.DebugLog, "basis: %d samples, %d nodes, %d basis functions over [%g, %g]",
		len(x), len(plan.Nodes), basis.N, x[0], x[len(x)-1])

	return &SplineBasis{cfg: *cfg, basis: basis, ok: true}, nil
}

// Ok reports whether the basis was fully constructed. It is safe to call
// on a nil receiver.
func (b *SplineBasis) Ok() bool {
	return b != nil && b.ok
}

// SampleCount returns the number of sample abscissas the basis was built
// over. Every fitted y array must have this length.
func (b *SplineBasis) SampleCount() int {
	return len(b.basis.X)
}

// NodeCount returns the number of distinct nodes in the knot layout.
func (b *SplineBasis) NodeCount() int {
	return len(b.basis.Nodes)
}

// Domain returns the spline domain endpoints.
func (b *SplineBasis) Domain() (xmin, xmax float64) {
	return b.basis.X[0], b.basis.X[len(b.basis.X)-1]
}
