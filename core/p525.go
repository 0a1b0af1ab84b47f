package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/itu-propagation/model"
)

// Rec. ITU-R P.525-4: free-space attenuation and the field-strength /
// power-flux conversions bundled with it. Strictly valid for propagation in
// vacuum only.

// FreeSpacePathLoss returns the free-space basic transmission loss in dB for
// an isotropic link: 20·log10(4πdf/c).
func FreeSpacePathLoss(freqHz, distanceM float64) (float64, error) {
	if freqHz <= 0 {
		return 0, fmt.Errorf("%w: frequency must be > 0 Hz, got %g", ErrInvalidArgument, freqHz)
	}
	if distanceM <= 0 {
		return 0, fmt.Errorf("%w: distance must be > 0 m, got %g", ErrInvalidArgument, distanceM)
	}

	wavelength := model.SpeedOfLight / freqHz
	return 20 * math.Log10(4*math.Pi*distanceM/wavelength), nil
}

// PowerUnit names the unit an EIRP figure is expressed in.
type PowerUnit string

const (
	PowerDBW       PowerUnit = "dBW"
	PowerDBm       PowerUnit = "dBm"
	PowerWatt      PowerUnit = "W"
	PowerMilliWatt PowerUnit = "mW"
)

// eirpDBW normalises an EIRP figure to dBW.
func eirpDBW(power float64, unit PowerUnit) (float64, error) {
	switch unit {
	case PowerDBW, "":
		return power, nil
	case PowerDBm:
		return power - 30, nil
	case PowerWatt:
		if power <= 0 {
			return 0, fmt.Errorf("%w: power must be > 0 W, got %g", ErrInvalidArgument, power)
		}
		return 10 * math.Log10(power), nil
	case PowerMilliWatt:
		if power <= 0 {
			return 0, fmt.Errorf("%w: power must be > 0 mW, got %g", ErrInvalidArgument, power)
		}
		return 10 * math.Log10(power/1e3), nil
	default:
		return 0, fmt.Errorf("%w: unsupported power unit %q", ErrInvalidArgument, unit)
	}
}

// FieldStrengthAtDistance returns the E-field strength in dBµV/m at the
// given distance (km) from a transmitter with the given EIRP.
func FieldStrengthAtDistance(power float64, unit PowerUnit, distanceKm float64) (float64, error) {
	p, err := eirpDBW(power, unit)
	if err != nil {
		return 0, err
	}
	if distanceKm <= 0 {
		return 0, fmt.Errorf("%w: distance must be > 0 km, got %g", ErrInvalidArgument, distanceKm)
	}
	return p - 20*math.Log10(distanceKm) + 74.8, nil
}

// PowerFluxAtDistance returns the power flux density in dBW/m² at the given
// distance (km) from a transmitter with the given EIRP.
func PowerFluxAtDistance(power float64, unit PowerUnit, distanceKm float64) (float64, error) {
	fieldStrength, err := FieldStrengthAtDistance(power, unit, distanceKm)
	if err != nil {
		return 0, err
	}
	return fieldStrength - 145.8, nil
}

// PowerFluxToFieldStrength converts an average power flux in W/m² to the
// corresponding E-field amplitude in V/m.
func PowerFluxToFieldStrength(fluxWPerM2 float64) (float64, error) {
	if fluxWPerM2 < 0 {
		return 0, fmt.Errorf("%w: power flux must be >= 0 W/m², got %g", ErrInvalidArgument, fluxWPerM2)
	}
	return math.Sqrt(2 * fluxWPerM2 / (model.SpeedOfLight * model.Epsilon0)), nil
}

// FieldStrengthToPowerFlux converts an E-field amplitude in V/m to the
// corresponding average power flux in W/m² (Poynting relation).
func FieldStrengthToPowerFlux(fieldVPerM float64) float64 {
	amp := math.Abs(fieldVPerM)
	return 0.5 * model.SpeedOfLight * model.Epsilon0 * amp * amp
}
