package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/itu-propagation/model"
)

// Rec. ITU-R P.527-4 double-Debye model for the complex relative
// permittivity of water. The coefficient values are part of the
// Recommendation and must not be altered: downstream propagation results
// depend on bit-for-bit formula fidelity.

// Validity limits for the water models.
const (
	waterMinFreqHz = 1e6
	waterMaxFreqHz = 1000e9

	waterMinTempC = 0.0
	waterMaxTempC = 40.0

	maxSalinityPpt = 40.0
)

// debyeParams are the temperature-dependent terms shared by the fresh and
// saline branches: the two relaxation frequencies (GHz) and the static,
// intermediate, and optical permittivities.
type debyeParams struct {
	fD1, fD2  float64
	epsStatic float64
	epsPole   float64
	epsInf    float64
}

func debyeParamsAt(tempC float64) debyeParams {
	theta := 300.0/model.KelvinFromCelsius(tempC) - 1

	fD1 := 20.20 - 146.4*theta + 316*theta*theta
	epsStatic := 77.66 + 103.3*theta

	return debyeParams{
		fD1:       fD1,
		fD2:       39.8 * fD1,
		epsStatic: epsStatic,
		epsPole:   0.0671 * epsStatic,
		epsInf:    3.52 - 7.52*theta,
	}
}

func checkWaterInputs(tempC, freqHz float64) error {
	if freqHz <= 0 {
		return fmt.Errorf("%w: frequency must be > 0 Hz, got %g", ErrInvalidArgument, freqHz)
	}
	if freqHz < waterMinFreqHz || freqHz > waterMaxFreqHz {
		return fmt.Errorf("%w: frequency %g Hz outside P.527 water band [%g, %g] Hz",
			ErrOutOfValidityRange, freqHz, waterMinFreqHz, waterMaxFreqHz)
	}
	if tempC < waterMinTempC || tempC > waterMaxTempC {
		return fmt.Errorf("%w: temperature %g °C outside P.527 range [%g, %g] °C",
			ErrOutOfValidityRange, tempC, waterMinTempC, waterMaxTempC)
	}
	return nil
}

// PureWaterPermittivity returns the complex relative permittivity of pure
// (fresh) water at the given temperature and frequency.
func PureWaterPermittivity(tempC, freqHz float64) (model.ComplexPermittivity, error) {
	if err := checkWaterInputs(tempC, freqHz); err != nil {
		return model.ComplexPermittivity{}, err
	}

	p := debyeParamsAt(tempC)
	fGHz := model.GHzFromHz(freqHz)

	denom1 := 1 + (fGHz/p.fD1)*(fGHz/p.fD1)
	denom2 := 1 + (fGHz/p.fD2)*(fGHz/p.fD2)

	epsReal := (p.epsStatic-p.epsPole)/denom1 +
		(p.epsPole-p.epsInf)/denom2 +
		p.epsInf

	epsImag := (fGHz/p.fD1)*(p.epsStatic-p.epsPole)/denom1 +
		(fGHz/p.fD2)*(p.epsPole-p.epsInf)/denom2

	return model.ComplexPermittivity{Real: epsReal, Imag: epsImag}, nil
}

// SaltWaterPermittivity returns the complex relative permittivity of saline
// water at the given salinity (‰, g/kg), temperature, and frequency. A
// salinity of exactly zero selects the fresh-water branch, which carries no
// ionic conductivity term.
func SaltWaterPermittivity(salinityPpt, tempC, freqHz float64) (model.ComplexPermittivity, error) {
	if salinityPpt < 0 {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: salinity must be >= 0 ‰, got %g",
			ErrInvalidArgument, salinityPpt)
	}
	if salinityPpt == 0 {
		return PureWaterPermittivity(tempC, freqHz)
	}
	if salinityPpt > maxSalinityPpt {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: salinity %g ‰ outside P.527 range [0, %g] ‰",
			ErrOutOfValidityRange, salinityPpt, maxSalinityPpt)
	}
	if err := checkWaterInputs(tempC, freqHz); err != nil {
		return model.ComplexPermittivity{}, err
	}

	p := debyeParamsAt(tempC)
	s := salinityPpt
	t := tempC

	// Ionic conductivity of sea water (S/m), via the 35 ‰ reference
	// conductivity and the salinity/temperature correction ratios.
	alpha1 := 49.843 - 0.2276*s + 0.198e-2*s*s
	alpha0 := (6.9431 + 3.2841*s - 9.9486e-2*s*s) /
		(84.85 + 69.024*s + s*s)
	rT15 := 1 + alpha0*(t-15)/(alpha1+t)

	r15 := s * (37.5109 + 5.45216*s + 1.4409e-2*s*s) /
		(1004.75 + 182.283*s + s*s)

	sigma35 := 2.903602 + 8.607e-2*t + 4.738817e-4*t*t -
		2.991e-6*t*t*t + 4.3047e-9*t*t*t*t

	sigmaSW := sigma35 * r15 * rT15

	// Salinity corrections to the Debye parameters.
	epsInfSW := p.epsInf * (1 + s*(1.57883e-4*t-2.04265e-3))
	fD1SW := p.fD1 * (1 + s*(2.39357e-3-3.13530e-5*t+2.52477e-7*t*t))
	fD2SW := p.fD2 * (1 + s*(1.81176e-4*t-1.99723e-2))
	epsPoleSW := p.epsPole * math.Exp(1.76032e-4*s*s-9.22144e-5*t*s-6.28908e-3*s)
	epsStaticSW := p.epsStatic * math.Exp(4.74868e-6*s*s+1.15574e-5*t*s-3.56417e-3*s)

	fGHz := model.GHzFromHz(freqHz)
	denom1 := 1 + (fGHz/fD1SW)*(fGHz/fD1SW)
	denom2 := 1 + (fGHz/fD2SW)*(fGHz/fD2SW)

	num1 := epsStaticSW - epsPoleSW
	num2 := epsPoleSW - epsInfSW

	epsReal := num1/denom1 + num2/denom2 + epsInfSW

	epsImag := (fGHz/fD1SW)*num1/denom1 +
		(fGHz/fD2SW)*num2/denom2 +
		18*sigmaSW/fGHz

	return model.ComplexPermittivity{Real: epsReal, Imag: epsImag}, nil
}
