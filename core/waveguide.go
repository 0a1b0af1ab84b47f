package core

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/signalsfoundry/itu-propagation/model"
)

// Rec. ITU-R P.2040 lossy rectangular waveguide, dominant (TE10) mode. The
// guide is treated as uniformly filled with a lossy dielectric; wall losses
// are not modelled. All quantities are closed-form, no iteration.

func validateGeometry(geom model.WaveguideGeometry) error {
	if geom.A <= 0 || geom.B <= 0 {
		return fmt.Errorf("%w: dimensions must be > 0 m (a=%g b=%g)", ErrInvalidGeometry, geom.A, geom.B)
	}
	if geom.B >= geom.A {
		return fmt.Errorf("%w: broad dimension must exceed narrow (a=%g b=%g)", ErrInvalidGeometry, geom.A, geom.B)
	}
	return nil
}

func validatePermittivity(eps model.ComplexPermittivity) error {
	if eps.Real < 1 {
		return fmt.Errorf("%w: ε′ must be >= 1 for a dielectric fill, got %g", ErrOutOfValidityRange, eps.Real)
	}
	if eps.Imag < 0 {
		return fmt.Errorf("%w: ε″ must be >= 0, got %g", ErrInvalidArgument, eps.Imag)
	}
	return nil
}

// DominantModeCutoff returns the TE10 cutoff frequency in Hz for a guide
// filled with a dielectric of the given permittivity: c / (2a·√ε′).
func DominantModeCutoff(geom model.WaveguideGeometry, eps model.ComplexPermittivity) (float64, error) {
	if err := validateGeometry(geom); err != nil {
		return 0, err
	}
	if err := validatePermittivity(eps); err != nil {
		return 0, err
	}
	return model.SpeedOfLight / (2 * geom.A * math.Sqrt(eps.Real)), nil
}

// PropagationConstant returns the attenuation constant α (Np/m) and phase
// constant β (rad/m) of the TE10 mode at the given frequency.
//
// γ = α + jβ = sqrt(kc² − ω²μ₀ε₀(ε′ − jε″)) with kc = π/a. Below cutoff the
// argument's real part dominates and the mode is evanescent (large α, β→0);
// this is a valid operating point, not an error. At exactly cutoff in a
// lossless fill γ = 0.
func PropagationConstant(geom model.WaveguideGeometry, eps model.ComplexPermittivity, freqHz float64) (alpha, beta float64, err error) {
	if err := validateGeometry(geom); err != nil {
		return 0, 0, err
	}
	if err := validatePermittivity(eps); err != nil {
		return 0, 0, err
	}
	if freqHz <= 0 {
		return 0, 0, fmt.Errorf("%w: frequency must be > 0 Hz, got %g", ErrInvalidArgument, freqHz)
	}

	kc := math.Pi / geom.A
	omega := 2 * math.Pi * freqHz
	k2 := complex(omega*omega*model.Mu0*model.Epsilon0, 0) * eps.Complex()

	// The argument lies in the closed upper half-plane (ε″ ≥ 0), so the
	// principal square root lands in the first quadrant: α ≥ 0, β ≥ 0.
	gamma := cmplx.Sqrt(complex(kc*kc, 0) - k2)

	return real(gamma), imag(gamma), nil
}

// WaveguideAttenuation evaluates the full dominant-mode result at one
// frequency: cutoff, propagation constant, and attenuation in dB/m.
func WaveguideAttenuation(geom model.WaveguideGeometry, eps model.ComplexPermittivity, freqHz float64) (model.PropagationResult, error) {
	cutoff, err := DominantModeCutoff(geom, eps)
	if err != nil {
		return model.PropagationResult{}, err
	}
	alpha, beta, err := PropagationConstant(geom, eps, freqHz)
	if err != nil {
		return model.PropagationResult{}, err
	}

	return model.PropagationResult{
		CutoffHz:    cutoff,
		AlphaNpPerM: alpha,
		BetaRadPerM: beta,
		AttenDBPerM: model.NepersToDB * alpha,
	}, nil
}
