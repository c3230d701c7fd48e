package spline

import "fmt"

// Row caches the nonzero basis function values at one sample abscissa.
// Row i of the basis-value matrix has nonzero entries only in the window
// [First, First+Order) of basis-function indices.
type Row struct {
	// First is the index of the first nonzero basis function.
	First int

	// V holds the Order nonzero basis values, V[k] belonging to basis
	// function First+k.
	V [Order]float64
}

// EndpointRows caches the basis window at one domain endpoint together
// with its first and second derivatives. The assembler reads these to
// form boundary-condition constraints.
type EndpointRows struct {
	// First is the index of the first basis function in the window.
	First int

	// Der[d][k] is the d-th derivative of basis function First+k at the
	// endpoint, d in {0, 1, 2}.
	Der [3][Order]float64
}

// Basis is the immutable per-domain basis cache: the knot layout plus the
// nonzero basis values at every sample abscissa. Once built it may be
// shared read-only across any number of fits over the same x domain.
type Basis struct {
	// X is the engine's copy of the sample abscissas.
	X []float64

	// Nodes and Knots come from the plan that produced the basis.
	Nodes []float64
	Knots []float64

	// N is the number of basis functions (coefficients).
	N int

	// Rows holds one cached window per sample.
	Rows []Row

	// Left and Right are the derivative windows at the two domain
	// endpoints.
	Left  EndpointRows
	Right EndpointRows
}

// Build evaluates the cubic basis at every sample abscissa and caches the
// banded result. Samples must lie within [xmin, xmax] of the plan.
func Build(x []float64, plan *Plan) (*Basis, error) {
	n := plan.BasisCount()
	knots := plan.Knots
	xmin, xmax := knots[Degree], knots[n]

	b := &Basis{
		X:     append([]float64(nil), x...),
		Nodes: plan.Nodes,
		Knots: knots,
		N:     n,
		Rows:  make([]Row, len(x)),
	}

	for i, xi := range x {
		if xi < xmin || xi > xmax {
			return nil, fmt.Errorf("%w: x[%d]=%g outside [%g, %g]", ErrSampleOutOfDomain, i, xi, xmin, xmax)
		}
		span := findSpan(knots, n, xi)
		b.Rows[i].First = span - Degree
		basisValues(knots, span, xi, &b.Rows[i].V)
	}

	b.Left = endpointRows(knots, n, xmin)
	b.Right = endpointRows(knots, n, xmax)

	return b, nil
}

// FittedAt returns the curve value at sample i for the given coefficient
// vector, using the cached basis row.
func (b *Basis) FittedAt(coef []float64, i int) float64 {
	row := &b.Rows[i]
	var s float64
	for k := 0; k < Order; k++ {
		s += row.V[k] * coef[row.First+k]
	}
	return s
}

// findSpan locates the knot span containing x by binary search: the index
// i with knots[i] <= x < knots[i+1]. n is the basis function count. The
// right domain endpoint maps into the last non-degenerate span.
func findSpan(knots []float64, n int, x float64) int {
	if x >= knots[n] {
		return n - 1
	}
	if x <= knots[Degree] {
		return Degree
	}

	low, high := Degree, n
	mid := (low + high) / 2
	for x < knots[mid] || x >= knots[mid+1] {
		if x < knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// basisValues computes the Order nonzero basis functions at x on the
// given span via the Cox-de Boor recursion in its triangular form
// (The NURBS Book, algorithm 2.2). The left/right difference formulation
// realizes the 0/0 = 0 convention for degenerate intervals structurally:
// zero-width spans never contribute a division.
func basisValues(knots []float64, span int, x float64, out *[Order]float64) {
	var left, right [Order]float64

	out[0] = 1
	for j := 1; j <= Degree; j++ {
		left[j] = x - knots[span+1-j]
		right[j] = knots[span+j] - x

		var saved float64
		for r := 0; r < j; r++ {
			temp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		out[j] = saved
	}
}

// basisDerivatives computes the nonzero basis functions and their
// derivatives up to order nd at x (The NURBS Book, algorithm 2.3).
// ders[d][k] is the d-th derivative of basis function span-Degree+k.
func basisDerivatives(knots []float64, span int, x float64, nd int) [3][Order]float64 {
	var ndu [Order][Order]float64
	var left, right [Order]float64
	var ders [3][Order]float64

	ndu[0][0] = 1
	for j := 1; j <= Degree; j++ {
		left[j] = x - knots[span+1-j]
		right[j] = knots[span+j] - x

		var saved float64
		for r := 0; r < j; r++ {
			// Lower triangle stores the knot differences, upper the
			// basis values.
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]

			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	for j := 0; j <= Degree; j++ {
		ders[0][j] = ndu[j][Degree]
	}

	var a [2][Order]float64
	for r := 0; r <= Degree; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1

		for k := 1; k <= nd; k++ {
			var d float64
			rk := r - k
			pk := Degree - k

			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}

			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k - 1
			if r-1 > pk {
				j2 = Degree - r
			}

			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}

			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}

			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	// Scale by Degree!/(Degree-k)!.
	acc := Degree
	for k := 1; k <= nd; k++ {
		for j := 0; j <= Degree; j++ {
			ders[k][j] *= float64(acc)
		}
		acc *= Degree - k
	}

	return ders
}

// endpointRows evaluates the basis window and its first two derivatives
// at a domain endpoint.
func endpointRows(knots []float64, n int, x float64) EndpointRows {
	span := findSpan(knots, n, x)
	return EndpointRows{
		First: span - Degree,
		Der:   basisDerivatives(knots, span, x, 2),
	}
}
