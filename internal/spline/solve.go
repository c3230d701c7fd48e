package spline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solve factors the banded system with a banded Cholesky decomposition and
// returns the full coefficient vector, including the two boundary
// coefficients recovered from their constraint relations. A non-positive
// pivot during factorization surfaces as ErrSingularSystem; no
// regularization or retry is attempted.
func Solve(sys *System) ([]float64, error) {
	var ch mat.BandCholesky
	if ok := ch.Factorize(sys.Gram); !ok {
		return nil, fmt.Errorf("%w: banded Cholesky factorization failed", ErrSingularSystem)
	}

	var v mat.VecDense
	if err := ch.SolveVecTo(&v, sys.Rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	coef := make([]float64, sys.N)
	for i := 0; i < sys.N-2; i++ {
		coef[i+1] = v.AtVec(i)
	}
	coef[0] = sys.BetaLeft[0]*coef[1] + sys.BetaLeft[1]*coef[2]
	coef[sys.N-1] = sys.BetaRight[0]*coef[sys.N-2] + sys.BetaRight[1]*coef[sys.N-3]

	return coef, nil
}
