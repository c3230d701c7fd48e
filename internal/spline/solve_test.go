package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-bspline-smoother/internal/testutil"
)

func fitCurve(t *testing.T, x, y, weights []float64, wavelength float64, bc Boundary) []float64 {
	t.Helper()
	plan, err := PlanKnots(x[0], x[len(x)-1], wavelength, 0, 0)
	require.NoError(t, err)
	b, err := Build(x, plan)
	require.NoError(t, err)
	sys, err := Assemble(b, y, weights, bc)
	require.NoError(t, err)
	coef, err := Solve(sys)
	require.NoError(t, err)
	testutil.AssertNoNaNOrInf(t, coef)
	return coef
}

// TestSolve_ReproducesLinear verifies exact reproduction of linear data
// under the zero-curvature condition, which a linear function satisfies.
func TestSolve_ReproducesLinear(t *testing.T) {
	x := uniformX(21, 0, 10)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2 + 0.5*xi
	}

	plan, err := PlanKnots(0, 10, 2, 0, 0)
	require.NoError(t, err)
	b, err := Build(x, plan)
	require.NoError(t, err)
	sys, err := Assemble(b, y, nil, ZeroSecondDerivative)
	require.NoError(t, err)
	coef, err := Solve(sys)
	require.NoError(t, err)

	for i, xi := range x {
		assert.InDelta(t, y[i], Evaluate(plan.Knots, coef, xi), testutil.ExactnessTolerance, "x=%g", xi)
		assert.InDelta(t, y[i], b.FittedAt(coef, i), testutil.ExactnessTolerance, "cached row at x=%g", xi)
	}
	// Between samples and in slope too: the curve is the line itself.
	for _, q := range []float64{0.3, 3.33, 7.77, 9.9} {
		assert.InDelta(t, 2+0.5*q, Evaluate(plan.Knots, coef, q), testutil.ExactnessTolerance)
		assert.InDelta(t, 0.5, Slope(plan.Knots, coef, q), testutil.ExactnessTolerance)
	}
}

// TestSolve_ReproducesCubicWithZeroEndpoints verifies near-machine
// reproduction of a cubic that already vanishes at both endpoints.
func TestSolve_ReproducesCubicWithZeroEndpoints(t *testing.T) {
	x := uniformX(19, 0, 9)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi * (xi - 9) * (xi - 4)
	}

	coef := fitCurve(t, x, y, nil, 2, ZeroEndpoints)

	plan, _ := PlanKnots(0, 9, 2, 0, 0)
	for i, xi := range x {
		testutil.AssertRelativeError(t, y[i], Evaluate(plan.Knots, coef, xi), 1e-8, "x=%g", xi)
	}
}

// TestSolve_ReproducesConstantWithZeroSlope verifies a constant survives
// the zero-first-derivative condition exactly.
func TestSolve_ReproducesConstantWithZeroSlope(t *testing.T) {
	x := uniformX(15, -2, 5)
	y := make([]float64, len(x))
	for i := range y {
		y[i] = 3
	}

	coef := fitCurve(t, x, y, nil, 3, ZeroFirstDerivative)

	plan, _ := PlanKnots(-2, 5, 3, 0, 0)
	for _, q := range []float64{-2, -1.5, 0, 2.25, 5} {
		assert.InDelta(t, 3.0, Evaluate(plan.Knots, coef, q), testutil.ExactnessTolerance, "x=%g", q)
		assert.InDelta(t, 0.0, Slope(plan.Knots, coef, q), testutil.ExactnessTolerance, "x=%g", q)
	}
}

// TestSolve_CoarsestLayout verifies the full pipeline at the minimum
// node count, where the reduced system is smaller than the cubic
// bandwidth. A full-span wavelength clamps to this layout.
func TestSolve_CoarsestLayout(t *testing.T) {
	x := uniformX(19, 0, 9)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi * (xi - 9) * (xi - 4)
	}

	coef := fitCurve(t, x, y, nil, 9, ZeroEndpoints)
	require.Len(t, coef, 5)

	plan, _ := PlanKnots(0, 9, 9, 0, 0)
	require.Len(t, plan.Nodes, MinNodes)
	for i, xi := range x {
		assert.InDelta(t, y[i], Evaluate(plan.Knots, coef, xi), 1e-6, "x=%g", xi)
	}

	// An explicit three-node request hits the same reduced size.
	plan, err := PlanKnots(0, 9, 0, 3, 0)
	require.NoError(t, err)
	b, err := Build(x, plan)
	require.NoError(t, err)
	sys, err := Assemble(b, y, nil, ZeroEndpoints)
	require.NoError(t, err)
	coef2, err := Solve(sys)
	require.NoError(t, err)
	assert.Equal(t, coef, coef2)
}

// TestSolve_SingularSystem verifies that too few samples for the node
// density surfaces as a factorization failure, not a bogus curve.
func TestSolve_SingularSystem(t *testing.T) {
	x := []float64{0, 1, 2, 10}
	y := []float64{1, 2, 3, 4}

	plan, err := PlanKnots(0, 10, 0, 10, 0)
	require.NoError(t, err)
	b, err := Build(x, plan)
	require.NoError(t, err)
	sys, err := Assemble(b, y, nil, ZeroSecondDerivative)
	require.NoError(t, err)

	_, err = Solve(sys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSingularSystem)
}

// TestAssemble_InvalidBoundary verifies out-of-range selectors surface
// through the sentinel taxonomy.
func TestAssemble_InvalidBoundary(t *testing.T) {
	x := uniformX(11, 0, 10)
	y := make([]float64, len(x))

	plan, err := PlanKnots(0, 10, 4, 0, 0)
	require.NoError(t, err)
	b, err := Build(x, plan)
	require.NoError(t, err)

	for _, bc := range []Boundary{-1, 3} {
		_, err := Assemble(b, y, nil, bc)
		require.Error(t, err, "boundary %d", int(bc))
		assert.ErrorIs(t, err, ErrInvalidBoundary, "boundary %d", int(bc))
	}
}

// TestEvaluate_ClampsOutsideDomain verifies the documented extrapolation
// policy: out-of-domain queries evaluate at the nearest endpoint.
func TestEvaluate_ClampsOutsideDomain(t *testing.T) {
	x := uniformX(11, 0, 10)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi * (10 - xi)
	}

	coef := fitCurve(t, x, y, nil, 4, ZeroEndpoints)
	plan, _ := PlanKnots(0, 10, 4, 0, 0)

	assert.Equal(t, Evaluate(plan.Knots, coef, 0), Evaluate(plan.Knots, coef, -3))
	assert.Equal(t, Evaluate(plan.Knots, coef, 10), Evaluate(plan.Knots, coef, 15))
	assert.Equal(t, Slope(plan.Knots, coef, 0), Slope(plan.Knots, coef, -3))
	assert.Equal(t, Slope(plan.Knots, coef, 10), Slope(plan.Knots, coef, 15))
}

// TestAssemble_ZeroWeightSkipsSample verifies zero-weight samples do not
// influence the fit.
func TestAssemble_ZeroWeightSkipsSample(t *testing.T) {
	x := uniformX(11, 0, 10)
	y := make([]float64, len(x))
	w := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 + 2*xi
		w[i] = 1
	}
	// Corrupt one interior point and mask it out.
	y[5] += 100
	w[5] = 0

	coef := fitCurve(t, x, y, w, 4, ZeroSecondDerivative)
	plan, _ := PlanKnots(0, 10, 4, 0, 0)

	assert.InDelta(t, 1+2*5.0, Evaluate(plan.Knots, coef, 5), 1e-6)
}
