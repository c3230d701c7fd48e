package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	splinesmoother "github.com/tphakala/go-bspline-smoother"
)

// readSamples parses whitespace-separated (x, y) pairs, one pair per
// line. Blank lines are skipped. Abscissas are shifted so the first
// sample reads as x=0, which keeps large raw coordinates (timestamps,
// pressure altitudes) well conditioned.
func readSamples(r io.Reader) (x, y []float64, err error) {
	sc := bufio.NewScanner(r)
	var base float64
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: want two columns, got %d", line, len(fields))
		}
		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		yv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(x) == 0 {
			base = xv
		}
		x = append(x, xv-base)
		y = append(y, yv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// subsample keeps every step-th sample. Strides below 2 return the input
// unchanged.
func subsample(x, y []float64, step int) ([]float64, []float64) {
	if step < 2 {
		return x, y
	}
	var xs, ys []float64
	for i := 0; i < len(x); i += step {
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// writeTable emits the four-column fit table: a header line, then one
// row at every sample point and at every midpoint between consecutive
// samples.
func writeTable(w io.Writer, x, y []float64, fit *splinesmoother.FittedSpline) error {
	_, err := fmt.Fprintf(w, "%*s %*s %*s %*s\n",
		colX, "x", colY, "y", colSpline, "spline(x)", colSlope, "slope(spline(x))")
	if err != nil {
		return err
	}
	for i := 0; i < 2*len(x)-1; i++ {
		// Even rows land on sample points, odd rows on midpoints.
		xm := (x[i/2] + x[(i+1)/2]) / 2
		ym := (y[i/2] + y[(i+1)/2]) / 2
		_, err := fmt.Fprintf(w, "%*.6g %*.6g %*.6g %*.6g\n",
			colX, xm, colY, ym, colSpline, fit.Evaluate(xm), colSlope, fit.Slope(xm))
		if err != nil {
			return err
		}
	}
	return nil
}
