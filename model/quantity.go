package model

import "math"

// Physical constants shared by all models. All quantities exchanged between
// packages are in canonical SI units: frequency in Hz, length in metres,
// temperature in degrees Celsius, permittivity dimensionless.
const (
	// SpeedOfLight is the speed of light in vacuum (m/s, exact).
	SpeedOfLight = 299792458.0

	// Epsilon0 is the vacuum permittivity (F/m).
	Epsilon0 = 8.8541878128e-12

	// Mu0 is the vacuum permeability (H/m).
	Mu0 = 1.25663706212e-6
)

// NepersToDB converts an attenuation constant from Np/m to dB/m.
const NepersToDB = 20.0 / math.Ln10

// GHzFromHz converts a frequency to GHz. The ITU-R coefficient tables are
// parameterised in GHz, so model internals convert at the formula boundary.
func GHzFromHz(freqHz float64) float64 { return freqHz / 1e9 }

// HzFromGHz converts a frequency in GHz to the canonical Hz representation.
func HzFromGHz(freqGHz float64) float64 { return freqGHz * 1e9 }

// KelvinFromCelsius converts a temperature to kelvins.
func KelvinFromCelsius(tempC float64) float64 { return tempC + 273.15 }

// FrequencyBand is a closed [Min,Max] validity interval in Hz.
type FrequencyBand struct {
	MinHz float64 `json:"MinHz"`
	MaxHz float64 `json:"MaxHz"`
}

// Contains reports whether freqHz lies inside the band.
func (b FrequencyBand) Contains(freqHz float64) bool {
	return freqHz >= b.MinHz && freqHz <= b.MaxHz
}
