// Package splinesmoother fits smooth cubic B-spline curves through
// scattered, ordered (x, y) samples in pure Go.
//
// The fitted curve low-pass smooths the data at a caller-chosen cutoff
// wavelength: variation on scales shorter than the wavelength is treated
// as noise and attenuated, rather than interpolated. The result is a
// compact curve that can be evaluated and differentiated anywhere in the
// sample domain.
//
// # Features
//
//   - Node placement from a cutoff wavelength, or an explicit node count
//   - Least-squares fit over a clamped cubic B-spline basis
//   - Banded normal equations solved with a banded Cholesky factorization
//   - Endpoint boundary conditions: zero value, zero slope, or zero
//     curvature at both ends of the domain
//   - Optional per-sample weights
//   - Reusable basis: fit many y arrays over one set of abscissas
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For one-shot smoothing:
//
//	fit, err := splinesmoother.SmoothWavelength(x, y, 4.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value := fit.Evaluate(2.5)
//	slope := fit.Slope(2.5)
//
// # Basis Reuse
//
// Basis construction depends only on the abscissas and the node layout,
// so it can be shared across any number of fits over the same x domain:
//
//	basis, err := splinesmoother.NewBasis(x, &splinesmoother.Config{Wavelength: 4.0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, y := range series {
//	    fit, err := basis.Fit(y, splinesmoother.BoundaryZeroSecondDerivative)
//	    ...
//	}
//
// Reusing a basis never changes numerical results: fitting against a
// shared basis and fitting against a freshly built one are identical.
//
// # Boundary Conditions
//
// Every fit constrains the curve at both domain endpoints with one of
// three conditions: [BoundaryZeroEndpoints] (value is zero),
// [BoundaryZeroFirstDerivative] (slope is zero), or
// [BoundaryZeroSecondDerivative] (curvature is zero). Zero curvature is
// the usual choice for smoothing since it distorts the fit least near
// the ends.
//
// # Thread Safety
//
// A [SplineBasis] is immutable once constructed and safe to share across
// goroutines; concurrent fits against different y arrays need no
// locking. A [FittedSpline] is likewise immutable, so concurrent
// Evaluate and Slope calls are safe.
//
// # Attribution
//
// The wavelength-driven smoothing design follows the BSpline library by
// the NCAR Earth Observing Laboratory (https://github.com/NCAR/bspline),
// which in turn derives from Katsuyuki Ooyama's spline smoothing method.
// The basis and derivative evaluation algorithms follow Piegl & Tiller,
// The NURBS Book, 2nd edition (algorithms 2.2 and 2.3).
package splinesmoother
