package core

import (
	"errors"
	"math"
	"testing"

	"github.com/signalsfoundry/itu-propagation/model"
)

var airGuide = model.WaveguideGeometry{A: 0.1, B: 0.05}

func TestDominantModeCutoff_AirFilledGuide(t *testing.T) {
	cutoff, err := DominantModeCutoff(airGuide, model.ComplexPermittivity{Real: 1})
	if err != nil {
		t.Fatalf("DominantModeCutoff: %v", err)
	}
	want := model.SpeedOfLight / (2 * 0.1) // ≈ 1.4990 GHz
	if math.Abs(cutoff-want) > 1e-6 {
		t.Errorf("cutoff = %v Hz, want %v Hz", cutoff, want)
	}
}

func TestDominantModeCutoff_ScalesWithPermittivity(t *testing.T) {
	air, err := DominantModeCutoff(airGuide, model.ComplexPermittivity{Real: 1})
	if err != nil {
		t.Fatalf("air cutoff: %v", err)
	}
	filled, err := DominantModeCutoff(airGuide, model.ComplexPermittivity{Real: 4})
	if err != nil {
		t.Fatalf("filled cutoff: %v", err)
	}
	if math.Abs(filled-air/2) > 1e-6 {
		t.Errorf("cutoff with ε′=4 is %v, want half the air cutoff %v", filled, air/2)
	}
}

func TestWaveguideAttenuation_BelowCutoffEvanescent(t *testing.T) {
	// 1 GHz in the air-filled 0.1 m guide is below the 1.499 GHz cutoff:
	// a valid evanescent operating point, with a purely reactive α and no
	// dielectric contribution (ε″ = 0).
	res, err := WaveguideAttenuation(airGuide, model.ComplexPermittivity{Real: 1}, 1e9)
	if err != nil {
		t.Fatalf("WaveguideAttenuation: %v", err)
	}

	wantCutoff := model.SpeedOfLight / 0.2
	if math.Abs(res.CutoffHz-wantCutoff) > 1e-6 {
		t.Errorf("cutoff = %v Hz, want %v Hz", res.CutoffHz, wantCutoff)
	}

	kc := math.Pi / 0.1
	k := 2 * math.Pi * 1e9 / model.SpeedOfLight
	wantAlpha := math.Sqrt(kc*kc - k*k)
	if math.Abs(res.AlphaNpPerM-wantAlpha) > 1e-9 {
		t.Errorf("α = %v Np/m, want %v Np/m", res.AlphaNpPerM, wantAlpha)
	}
	if res.BetaRadPerM != 0 {
		t.Errorf("β = %v rad/m below cutoff in a lossless fill, want 0", res.BetaRadPerM)
	}
	if math.Abs(res.AttenDBPerM-wantAlpha*20/math.Ln10) > 1e-9 {
		t.Errorf("attenuation = %v dB/m, want %v dB/m", res.AttenDBPerM, wantAlpha*20/math.Ln10)
	}
}

func TestWaveguideAttenuation_AboveCutoffLossless(t *testing.T) {
	res, err := WaveguideAttenuation(airGuide, model.ComplexPermittivity{Real: 1}, 3e9)
	if err != nil {
		t.Fatalf("WaveguideAttenuation: %v", err)
	}
	if res.AlphaNpPerM != 0 {
		t.Errorf("α = %v Np/m above cutoff in a lossless fill, want 0", res.AlphaNpPerM)
	}
	if res.AttenDBPerM != 0 {
		t.Errorf("attenuation = %v dB/m, want 0", res.AttenDBPerM)
	}

	kc := math.Pi / 0.1
	k := 2 * math.Pi * 3e9 / model.SpeedOfLight
	wantBeta := math.Sqrt(k*k - kc*kc)
	if math.Abs(res.BetaRadPerM-wantBeta) > 1e-9 {
		t.Errorf("β = %v rad/m, want %v rad/m", res.BetaRadPerM, wantBeta)
	}
}

func TestWaveguideAttenuation_FiniteAtExactCutoff(t *testing.T) {
	cutoff, err := DominantModeCutoff(airGuide, model.ComplexPermittivity{Real: 1})
	if err != nil {
		t.Fatalf("DominantModeCutoff: %v", err)
	}
	res, err := WaveguideAttenuation(airGuide, model.ComplexPermittivity{Real: 1}, cutoff)
	if err != nil {
		t.Fatalf("WaveguideAttenuation at cutoff: %v", err)
	}
	if math.IsNaN(res.AlphaNpPerM) || math.IsInf(res.AlphaNpPerM, 0) || res.AlphaNpPerM < 0 {
		t.Errorf("α at cutoff = %v, want finite and non-negative", res.AlphaNpPerM)
	}
	if math.IsNaN(res.AttenDBPerM) || math.IsInf(res.AttenDBPerM, 0) || res.AttenDBPerM < 0 {
		t.Errorf("attenuation at cutoff = %v, want finite and non-negative", res.AttenDBPerM)
	}
}

func TestWaveguideAttenuation_DielectricLossAboveCutoff(t *testing.T) {
	// A lossy fill must attenuate a propagating mode; more loss tangent,
	// more dB/m.
	mild, err := WaveguideAttenuation(airGuide, model.ComplexPermittivity{Real: 2, Imag: 0.01}, 3e9)
	if err != nil {
		t.Fatalf("mild loss: %v", err)
	}
	heavy, err := WaveguideAttenuation(airGuide, model.ComplexPermittivity{Real: 2, Imag: 0.1}, 3e9)
	if err != nil {
		t.Fatalf("heavy loss: %v", err)
	}
	if mild.AlphaNpPerM <= 0 {
		t.Errorf("α = %v Np/m with lossy fill, want > 0", mild.AlphaNpPerM)
	}
	if heavy.AlphaNpPerM <= mild.AlphaNpPerM {
		t.Errorf("α(tanδ=0.05) = %v, want > α(tanδ=0.005) = %v", heavy.AlphaNpPerM, mild.AlphaNpPerM)
	}
}

func TestWaveguideAttenuation_InvalidInputs(t *testing.T) {
	air := model.ComplexPermittivity{Real: 1}
	cases := []struct {
		name   string
		geom   model.WaveguideGeometry
		eps    model.ComplexPermittivity
		freqHz float64
		want   error
	}{
		{"zero broad dimension", model.WaveguideGeometry{A: 0, B: 0.05}, air, 1e9, ErrInvalidGeometry},
		{"zero narrow dimension", model.WaveguideGeometry{A: 0.1, B: 0}, air, 1e9, ErrInvalidGeometry},
		{"inverted dimensions", model.WaveguideGeometry{A: 0.05, B: 0.1}, air, 1e9, ErrInvalidGeometry},
		{"square guide", model.WaveguideGeometry{A: 0.1, B: 0.1}, air, 1e9, ErrInvalidGeometry},
		{"sub-unity permittivity", airGuide, model.ComplexPermittivity{Real: 0.5}, 1e9, ErrOutOfValidityRange},
		{"zero frequency", airGuide, air, 0, ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := WaveguideAttenuation(tc.geom, tc.eps, tc.freqHz); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}
