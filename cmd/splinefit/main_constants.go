package main

// Output column widths, matching the reference table layout.
const (
	colX      = 10
	colY      = 10
	colSpline = 15
	colSlope  = 20
)

// defaultBCDegree zeroes the second derivative at the endpoints, the
// least intrusive condition for smoothing.
const defaultBCDegree = 2
