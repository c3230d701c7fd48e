package splinesmoother

// libraryVersion identifies releases of this module.
const libraryVersion = "v1.0.0"

// AttributionURL points at the NCAR/EOL BSpline library whose smoothing
// design this package follows.
const AttributionURL = "https://github.com/NCAR/bspline"

// Version returns a human-readable library identifier.
func Version() string {
	return "go-bspline-smoother " + libraryVersion
}
