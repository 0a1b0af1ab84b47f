package model

// ComplexPermittivity is the relative permittivity ε = ε′ − jε″ of a medium
// at a single frequency. Both parts are stored as non-negative magnitudes for
// lossy media; the −j sign convention of the Recommendations is applied by
// Complex().
type ComplexPermittivity struct {
	Real float64 `json:"EpsReal"`
	Imag float64 `json:"EpsImag"`
}

// Complex returns ε′ − jε″ as a complex128 for use in dispersion relations.
func (e ComplexPermittivity) Complex() complex128 {
	return complex(e.Real, -e.Imag)
}

// LossTangent returns ε″/ε′, the dielectric dissipation ratio. A zero real
// part yields zero rather than dividing.
func (e ComplexPermittivity) LossTangent() float64 {
	if e.Real == 0 {
		return 0
	}
	return e.Imag / e.Real
}
