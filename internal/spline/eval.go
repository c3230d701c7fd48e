package spline

// Evaluate returns the curve value at x for the given knot vector and
// coefficients. Queries outside the knot domain clamp to the nearest
// endpoint.
func Evaluate(knots, coef []float64, x float64) float64 {
	n := len(coef)
	x = clampDomain(knots, n, x)
	span := findSpan(knots, n, x)

	var v [Order]float64
	basisValues(knots, span, x, &v)

	var s float64
	for k := 0; k < Order; k++ {
		s += v[k] * coef[span-Degree+k]
	}
	return s
}

// Slope returns the first derivative of the curve at x, with the same
// clamping policy as Evaluate.
func Slope(knots, coef []float64, x float64) float64 {
	n := len(coef)
	x = clampDomain(knots, n, x)
	span := findSpan(knots, n, x)

	ders := basisDerivatives(knots, span, x, 1)

	var s float64
	for k := 0; k < Order; k++ {
		s += ders[1][k] * coef[span-Degree+k]
	}
	return s
}

func clampDomain(knots []float64, n int, x float64) float64 {
	if xmin := knots[Degree]; x < xmin {
		return xmin
	}
	if xmax := knots[n]; x > xmax {
		return xmax
	}
	return x
}
