package spline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// System is the assembled symmetric banded normal-equations system, ready
// for the banded Cholesky solve. The boundary condition has already been
// folded in: the outermost coefficient at each end is eliminated via its
// constraint, so the system covers the N-2 interior coefficients and the
// Beta factors recover the eliminated pair after the solve.
type System struct {
	// N is the full coefficient count, including the two eliminated
	// boundary coefficients.
	N int

	// Gram is the reduced Gram matrix BᵀWB, bandwidth Degree (capped at
	// the reduced dimension minus one for the coarsest layouts).
	Gram *mat.SymBandDense

	// Rhs is the reduced right-hand side BᵀWy.
	Rhs *mat.VecDense

	// BetaLeft recovers the first coefficient: a[0] = BetaLeft[0]*a[1] +
	// BetaLeft[1]*a[2]. BetaRight does the same at the other end against
	// a[N-2] and a[N-3].
	BetaLeft  [2]float64
	BetaRight [2]float64
}

// Assemble accumulates the weighted least-squares normal equations from
// the cached basis rows and the sample ordinates. A nil weights slice
// means unit weights. The boundary condition is applied by elimination,
// which keeps the system symmetric positive definite (when the samples
// support it) and leaves the bandwidth unchanged.
func Assemble(b *Basis, y, weights []float64, bc Boundary) (*System, error) {
	d := int(bc)
	if d < 0 || d > 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoundary, int(bc))
	}

	betaL, err := boundaryBeta(&b.Left, d, false)
	if err != nil {
		return nil, err
	}
	betaR, err := boundaryBeta(&b.Right, d, true)
	if err != nil {
		return nil, err
	}

	nr := b.N - 2
	band := Degree
	if band > nr-1 {
		// The coarsest layout reduces to fewer unknowns than the cubic
		// bandwidth; gonum requires bandwidth < dimension.
		band = nr - 1
	}
	sys := &System{
		N:         b.N,
		Gram:      mat.NewSymBandDense(nr, band, nil),
		Rhs:       mat.NewVecDense(nr, nil),
		BetaLeft:  betaL,
		BetaRight: betaR,
	}

	var vals [Order]float64
	for i := range b.Rows {
		wi := 1.0
		if weights != nil {
			wi = weights[i]
			if wi == 0 {
				continue
			}
		}

		row := &b.Rows[i]
		rs := row.First - 1
		if rs < 0 {
			rs = 0
		}
		width := nr - rs
		if width > Order {
			width = Order
		}

		// Fold the raw window into reduced indexing, routing the two
		// eliminated coefficients onto their neighbors.
		vals = [Order]float64{}
		for k := 0; k < Order; k++ {
			v := row.V[k]
			if v == 0 {
				continue
			}
			switch j := row.First + k; {
			case j == 0:
				vals[0-rs] += v * betaL[0]
				vals[1-rs] += v * betaL[1]
			case j == b.N-1:
				vals[nr-1-rs] += v * betaR[0]
				vals[nr-2-rs] += v * betaR[1]
			default:
				vals[j-1-rs] += v
			}
		}

		wy := wi * y[i]
		for a := 0; a < width; a++ {
			va := vals[a]
			if va == 0 {
				continue
			}
			ia := rs + a
			sys.Rhs.SetVec(ia, sys.Rhs.AtVec(ia)+wy*va)
			for c := a; c < width; c++ {
				sys.Gram.SetSymBand(ia, rs+c, sys.Gram.At(ia, rs+c)+wi*va*vals[c])
			}
		}
	}

	return sys, nil
}

// boundaryBeta solves the endpoint constraint c·a = 0 for the outermost
// coefficient. c is the d-th derivative basis row at the endpoint; only
// the three outermost basis functions enter it, so the eliminated
// coefficient folds onto exactly two neighbors.
func boundaryBeta(rows *EndpointRows, d int, atRight bool) ([2]float64, error) {
	var c0, c1, c2 float64
	if atRight {
		c0, c1, c2 = rows.Der[d][3], rows.Der[d][2], rows.Der[d][1]
	} else {
		c0, c1, c2 = rows.Der[d][0], rows.Der[d][1], rows.Der[d][2]
	}
	if c0 == 0 {
		return [2]float64{}, fmt.Errorf("%w: degenerate boundary constraint", ErrSingularSystem)
	}
	return [2]float64{-c1 / c0, -c2 / c0}, nil
}
