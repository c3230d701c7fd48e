package splinesmoother

import "github.com/tphakala/go-bspline-smoother/internal/spline"

const (
	// DefaultNodeRatio is the knot spacing as a fraction of the cutoff
	// wavelength when Config.NodeRatio is left zero. Half a wavelength
	// per knot interval gives the cubic basis enough intervals to
	// represent one full period at the cutoff scale.
	DefaultNodeRatio = spline.DefaultNodeRatio

	// MinNodes is the minimum distinct node count for a valid cubic
	// basis; wavelengths longer than the domain span clamp to it.
	MinNodes = spline.MinNodes

	// minSamples is the fewest abscissas a basis can be built over.
	minSamples = 2
)
