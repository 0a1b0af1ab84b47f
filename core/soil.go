package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/itu-propagation/model"
)

// Rec. ITU-R P.527-4 semi-empirical dielectric mixing model for moist soil.
// The soil is a mixture of sand, clay, and silt plus free water; the water
// contribution reuses the pure-water Debye model with a conductivity
// correction tied to texture and bulk density.

const (
	soilMinFreqHz = 1e6
	soilMaxFreqHz = 100e9

	soilMinTempC = 0.0
	soilMaxTempC = 40.0

	// fractionSumTol bounds how far Sand+Clay+Silt may drift from 1.
	fractionSumTol = 1e-9

	// mixingAlpha is the fixed exponent of the semi-empirical mixing rule.
	mixingAlpha = 0.65
)

func validateSoil(comp model.SoilComposition) error {
	sum := comp.Sand + comp.Clay + comp.Silt
	if math.Abs(sum-1) > fractionSumTol {
		return fmt.Errorf("%w: texture fractions sum to %.12f, want 1", ErrInvalidArgument, sum)
	}
	if comp.Sand <= 0 || comp.Clay <= 0 || comp.Silt <= 0 {
		// The bulk-density regression takes the log of each percentage.
		return fmt.Errorf("%w: texture fractions must be > 0 (sand=%g clay=%g silt=%g)",
			ErrInvalidArgument, comp.Sand, comp.Clay, comp.Silt)
	}
	if comp.VolumetricWater <= 0 || comp.VolumetricWater > 1 {
		return fmt.Errorf("%w: volumetric water content must be in (0,1], got %g",
			ErrInvalidArgument, comp.VolumetricWater)
	}
	if comp.ParticleDensity < 0 {
		return fmt.Errorf("%w: particle density must be >= 0, got %g",
			ErrInvalidArgument, comp.ParticleDensity)
	}
	return nil
}

// SoilPermittivity returns the complex relative permittivity of moist soil at
// the given temperature and frequency.
func SoilPermittivity(comp model.SoilComposition, tempC, freqHz float64) (model.ComplexPermittivity, error) {
	if err := validateSoil(comp); err != nil {
		return model.ComplexPermittivity{}, err
	}
	if freqHz <= 0 {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: frequency must be > 0 Hz, got %g",
			ErrInvalidArgument, freqHz)
	}
	if freqHz < soilMinFreqHz || freqHz > soilMaxFreqHz {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: frequency %g Hz outside P.527 soil band [%g, %g] Hz",
			ErrOutOfValidityRange, freqHz, soilMinFreqHz, soilMaxFreqHz)
	}
	if tempC < soilMinTempC || tempC > soilMaxTempC {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: temperature %g °C outside P.527 range [%g, %g] °C",
			ErrOutOfValidityRange, tempC, soilMinTempC, soilMaxTempC)
	}

	// The published regressions are parameterised in percentages and GHz.
	pSand := comp.Sand * 100
	pClay := comp.Clay * 100
	pSilt := comp.Silt * 100
	fGHz := model.GHzFromHz(freqHz)

	rhoS := comp.ParticleDensity
	if rhoS == 0 {
		rhoS = model.DefaultParticleDensity
	}

	// Bulk density of the dry mix from the texture regression (g/cm³).
	rhoB := 1.072560 +
		0.078886*math.Log(pSand) +
		0.038753*math.Log(pClay) +
		0.032732*math.Log(pSilt)

	// Effective conductivity, split around the 1.35 GHz relaxation.
	sigma1 := 0.0467 + 0.2204*rhoB - 0.004111*pSand - 0.006614*pClay
	sigma2 := -1.645 + 1.939*rhoB - 0.0225622*pSand + 0.01594*pClay

	sigmaCommon := (sigma1 - sigma2) / (1 + (fGHz/1.35)*(fGHz/1.35))
	sigmaEffReal := sigmaCommon * (fGHz / 1.35)
	sigmaEffImag := sigmaCommon + sigma2

	// Free-water permittivity corrected for the bound fraction.
	fwCorr := (rhoS - rhoB) / (rhoS * comp.VolumetricWater) * (18 / fGHz)

	epsPW, err := PureWaterPermittivity(tempC, freqHz)
	if err != nil {
		return model.ComplexPermittivity{}, err
	}
	epsFWReal := epsPW.Real + sigmaEffReal*fwCorr
	epsFWImag := epsPW.Imag + sigmaEffImag*fwCorr

	// Very dry sandy mixes at high frequency can drive the corrected
	// free-water terms negative, where the fractional-power mixing rule
	// is undefined. Reject rather than emit NaN.
	if epsFWReal < 0 || epsFWImag < 0 {
		return model.ComplexPermittivity{}, fmt.Errorf(
			"%w: conductivity correction drives free-water permittivity negative (ε′=%g ε″=%g) at %g GHz, mv=%g",
			ErrOutOfValidityRange, epsFWReal, epsFWImag, fGHz, comp.VolumetricWater)
	}

	// Texture-dependent shape exponents of the mixing rule.
	betaReal := 1.2748 - 0.00519*pSand - 0.00152*pClay
	betaImag := 1.33797 - 0.00603*pSand - 0.00166*pClay

	// Permittivity of the dry solid matrix.
	epsSM := (1.01+0.44*rhoS)*(1.01+0.44*rhoS) - 0.062

	mv := comp.VolumetricWater

	epsSoilImag := math.Pow(mv, betaImag) * math.Pow(epsFWImag, mixingAlpha)
	epsSoilImag = math.Pow(epsSoilImag, 1/mixingAlpha)

	epsSoilReal := 1 - mv +
		math.Pow(mv, betaReal)*math.Pow(epsFWReal, mixingAlpha) +
		(rhoB/rhoS)*(math.Pow(epsSM, mixingAlpha)-1)
	epsSoilReal = math.Pow(epsSoilReal, 1/mixingAlpha)

	return model.ComplexPermittivity{Real: epsSoilReal, Imag: epsSoilImag}, nil
}
