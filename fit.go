package splinesmoother

import (
	"fmt"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-bspline-smoother/internal/spline"
)

// FittedSpline is the per-dataset half of a fit: the solved coefficient
// vector for one y array against a shared SplineBasis, plus the fit
// diagnostics. It is immutable after construction, so concurrent
// Evaluate and Slope calls are safe.
type FittedSpline struct {
	basis    *SplineBasis
	bc       BoundaryCondition
	coef     []float64
	variance float64
	ok       bool
}

// Fit solves for spline coefficients against y with unit weights.
// y must have exactly basis.SampleCount() entries.
func (b *SplineBasis) Fit(y []float64, bc BoundaryCondition) (*FittedSpline, error) {
	return b.FitWeighted(y, nil, bc)
}

// FitWeighted solves for spline coefficients against y with per-sample
// weights. A nil weights slice means unit weights; weights must be
// non-negative and a zero weight excludes the sample from the fit.
func (b *SplineBasis) FitWeighted(y, weights []float64, bc BoundaryCondition) (*FittedSpline, error) {
	if !b.Ok() {
		return nil, fmt.Errorf("%w: basis is not usable", ErrInvalidDomain)
	}
	if err := bc.Validate(); err != nil {
		return nil, err
	}
	n := b.SampleCount()
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d ordinates for %d samples", ErrDimensionMismatch, len(y), n)
	}
	if weights != nil {
		if len(weights) != n {
			return nil, fmt.Errorf("%w: %d weights for %d samples", ErrDimensionMismatch, len(weights), n)
		}
		for i, w := range weights {
			if w < 0 {
				return nil, fmt.Errorf("%w: weight[%d]=%g is negative", ErrInvalidWeight, i, w)
			}
		}
	}

	sys, err := spline.Assemble(b.basis, y, weights, spline.Boundary(bc))
	if err != nil {
		return nil, err
	}

	coef, err := spline.Solve(sys)
	if err != nil {
		debugf(b.cfg.DebugLog, "fit failed (%s): %v", bc, err)
		return nil, err
	}

	fit := &FittedSpline{
		basis:    b,
		bc:       bc,
		coef:     coef,
		variance: residualVariance(b.basis, coef, y, weights),
		ok:       true,
	}

	debugf(b.cfg.DebugLog, "fit ok (%s): variance %g", bc, fit.variance)

	return fit, nil
}

// residualVariance is the weighted mean squared difference between the
// fitted curve and the input ordinates at the sample abscissas.
func residualVariance(b *spline.Basis, coef, y, weights []float64) float64 {
	resid := make([]float64, len(y))
	for i := range y {
		resid[i] = b.FittedAt(coef, i) - y[i]
	}

	if weights == nil {
		return f64.DotProductUnsafe(resid, resid) / float64(len(resid))
	}

	wsum := f64.Sum(weights)
	if wsum <= 0 {
		return 0
	}
	wr := make([]float64, len(resid))
	for i, r := range resid {
		wr[i] = weights[i] * r
	}
	return f64.DotProductUnsafe(wr, resid) / wsum
}

// Ok reports whether the fit was fully solved. It is safe to call on a
// nil receiver. Evaluate and Slope require Ok to be true.
func (f *FittedSpline) Ok() bool {
	return f != nil && f.ok
}

// Evaluate returns the fitted curve value at x. Query points outside the
// domain clamp to the nearest endpoint.
func (f *FittedSpline) Evaluate(x float64) float64 {
	return spline.Evaluate(f.basis.basis.Knots, f.coef, x)
}

// Slope returns the first derivative of the fitted curve at x, with the
// same clamping policy as Evaluate.
func (f *FittedSpline) Slope(x float64) float64 {
	return spline.Slope(f.basis.basis.Knots, f.coef, x)
}

// Variance returns the weighted mean squared residual at the sample
// points, a fit-quality diagnostic.
func (f *FittedSpline) Variance() float64 {
	return f.variance
}

// Boundary returns the condition the fit was solved under.
func (f *FittedSpline) Boundary() BoundaryCondition {
	return f.bc
}

// Coefficients returns a copy of the solved coefficient vector, one entry
// per basis function.
func (f *FittedSpline) Coefficients() []float64 {
	return append([]float64(nil), f.coef...)
}

// Basis returns the shared basis this fit was solved against.
func (f *FittedSpline) Basis() *SplineBasis {
	return f.basis
}
