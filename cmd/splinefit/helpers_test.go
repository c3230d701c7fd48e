package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	splinesmoother "github.com/tphakala/go-bspline-smoother"
)

// TestReadSamples verifies pair parsing and the first-abscissa shift.
func TestReadSamples(t *testing.T) {
	input := "1000 2.5\n1001 3.5\n\n1002.5 -1\n"

	x, y, err := readSamples(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2.5}, x)
	assert.Equal(t, []float64{2.5, 3.5, -1}, y)
}

func TestReadSamples_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"one column", "1 2\n3\n"},
		{"non-numeric x", "abc 2\n"},
		{"non-numeric y", "1 two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readSamples(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

// TestSubsample verifies the stride behavior, including the degenerate
// strides that leave the input untouched.
func TestSubsample(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	y := []float64{10, 11, 12, 13, 14, 15, 16}

	xs, ys := subsample(x, y, 2)
	assert.Equal(t, []float64{0, 2, 4, 6}, xs)
	assert.Equal(t, []float64{10, 12, 14, 16}, ys)

	xs, ys = subsample(x, y, 3)
	assert.Equal(t, []float64{0, 3, 6}, xs)
	assert.Equal(t, []float64{10, 13, 16}, ys)

	for _, step := range []int{0, 1, -4} {
		xs, ys = subsample(x, y, step)
		assert.Equal(t, x, xs, "step %d", step)
		assert.Equal(t, y, ys, "step %d", step)
	}
}

// TestWriteTable verifies the table layout: one header line, then a row
// per sample point and per midpoint.
func TestWriteTable(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float64{0, 1, 0, -1, 0, 1, 0, -1, 0, 1}

	fit, err := splinesmoother.SmoothWavelength(x, y, 4)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, writeTable(&buf, x, y, fit))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+2*len(x)-1)

	header := strings.Fields(lines[0])
	assert.Equal(t, []string{"x", "y", "spline(x)", "slope(spline(x))"}, header)

	// Every row must split cleanly into the four columns, whatever the
	// printed magnitudes.
	for i, line := range lines[1:] {
		assert.Len(t, strings.Fields(line), 4, "row %d", i)
	}

	// Second row is the midpoint between the first two samples.
	fields := strings.Fields(lines[2])
	require.Len(t, fields, 4)
	assert.Equal(t, "0.5", fields[0])
	assert.Equal(t, "0.5", fields[1])
}
