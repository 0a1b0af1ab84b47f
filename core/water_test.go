package core

import (
	"errors"
	"testing"
)

func TestPureWaterPermittivity_KnownBehaviour(t *testing.T) {
	// At low frequency the permittivity approaches the static value
	// εs = 77.66 + 103.3·θ; at 20 °C that is ≈ 80.2 with negligible loss.
	eps, err := PureWaterPermittivity(20, 1e6)
	if err != nil {
		t.Fatalf("PureWaterPermittivity: %v", err)
	}
	if eps.Real < 78 || eps.Real > 82 {
		t.Errorf("static ε′ = %v, want ≈ 80", eps.Real)
	}
	if eps.Imag > 0.1 {
		t.Errorf("low-frequency ε″ = %v, want ≈ 0", eps.Imag)
	}

	// Past the first relaxation the real part must have collapsed well
	// below the static value and the loss peak must have appeared.
	high, err := PureWaterPermittivity(20, 100e9)
	if err != nil {
		t.Fatalf("PureWaterPermittivity(100 GHz): %v", err)
	}
	if high.Real >= eps.Real/2 {
		t.Errorf("ε′ at 100 GHz = %v, want well below static %v", high.Real, eps.Real)
	}
	if high.Imag <= 1 {
		t.Errorf("ε″ at 100 GHz = %v, want significant relaxation loss", high.Imag)
	}
}

func TestSaltWaterPermittivity_IonicLossExceedsFresh(t *testing.T) {
	// Identical (T, f): the saline imaginary part must be strictly larger
	// due to the added conductivity term.
	for _, fHz := range []float64{1e8, 1e9, 10e9} {
		fresh, err := SaltWaterPermittivity(0, 15, fHz)
		if err != nil {
			t.Fatalf("fresh branch at %g Hz: %v", fHz, err)
		}
		saline, err := SaltWaterPermittivity(20, 15, fHz)
		if err != nil {
			t.Fatalf("saline branch at %g Hz: %v", fHz, err)
		}
		if saline.Imag <= fresh.Imag {
			t.Errorf("at %g Hz saline ε″ = %v, want > fresh ε″ = %v", fHz, saline.Imag, fresh.Imag)
		}
	}
}

func TestSaltWaterPermittivity_ZeroSalinityIsFreshBranch(t *testing.T) {
	fromSalt, err := SaltWaterPermittivity(0, 25, 5e9)
	if err != nil {
		t.Fatalf("SaltWaterPermittivity(0): %v", err)
	}
	pure, err := PureWaterPermittivity(25, 5e9)
	if err != nil {
		t.Fatalf("PureWaterPermittivity: %v", err)
	}
	if fromSalt != pure {
		t.Errorf("zero-salinity result %+v differs from pure-water result %+v", fromSalt, pure)
	}
}

func TestWaterPermittivity_Idempotent(t *testing.T) {
	a, err := SaltWaterPermittivity(35, 15, 10e9)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	b, err := SaltWaterPermittivity(35, 15, 10e9)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if a != b {
		t.Errorf("repeated call differs: %+v vs %+v", a, b)
	}
}

func TestWaterPermittivity_RangeErrors(t *testing.T) {
	cases := []struct {
		name     string
		salinity float64
		tempC    float64
		freqHz   float64
		want     error
	}{
		{"zero frequency", 0, 20, 0, ErrInvalidArgument},
		{"negative frequency", 0, 20, -1e9, ErrInvalidArgument},
		{"frequency above band", 0, 20, 2e12, ErrOutOfValidityRange},
		{"frequency below band", 0, 20, 1e3, ErrOutOfValidityRange},
		{"temperature too cold", 0, -5, 1e9, ErrOutOfValidityRange},
		{"temperature too hot", 0, 55, 1e9, ErrOutOfValidityRange},
		{"negative salinity", -1, 20, 1e9, ErrInvalidArgument},
		{"salinity above range", 60, 20, 1e9, ErrOutOfValidityRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SaltWaterPermittivity(tc.salinity, tc.tempC, tc.freqHz)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}
