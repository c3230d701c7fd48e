package splinesmoother

// Smooth builds a basis over x and fits y in a single call, for callers
// that do not need to reuse the basis across multiple y arrays.
func Smooth(x, y []float64, cfg *Config, bc BoundaryCondition) (*FittedSpline, error) {
	basis, err := NewBasis(x, cfg)
	if err != nil {
		return nil, err
	}
	return basis.Fit(y, bc)
}

// SmoothWavelength smooths y at the given cutoff wavelength with zero
// second derivative at the endpoints, the conventional default.
func SmoothWavelength(x, y []float64, wavelength float64) (*FittedSpline, error) {
	return Smooth(x, y, &Config{Wavelength: wavelength}, BoundaryZeroSecondDerivative)
}
