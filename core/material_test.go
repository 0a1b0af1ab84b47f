package core

import (
	"errors"
	"math"
	"testing"

	"github.com/signalsfoundry/itu-propagation/kb"
	"github.com/signalsfoundry/itu-propagation/model"
)

func TestMaterialPermittivity_TableValues(t *testing.T) {
	reg := kb.NewMaterialKB()

	cases := []struct {
		tag      model.Material
		freqHz   float64
		wantReal float64
	}{
		// b = 0 for these fits, so ε′ equals the table coefficient across
		// the band; at 1 GHz ε″ = c exactly as well.
		{model.MaterialConcrete, 1e9, 5.24},
		{model.MaterialBrick, 1e9, 3.91},
		{model.MaterialGlass, 1e9, 6.31},
		{model.MaterialWood, 10e9, 1.99},
	}
	for _, tc := range cases {
		t.Run(string(tc.tag), func(t *testing.T) {
			eps, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: tc.tag}, tc.freqHz)
			if err != nil {
				t.Fatalf("MaterialPermittivity: %v", err)
			}
			if math.Abs(eps.Real-tc.wantReal)/tc.wantReal > 1e-6 {
				t.Errorf("ε′ = %v, want %v", eps.Real, tc.wantReal)
			}
			if eps.Imag < 0 {
				t.Errorf("ε″ = %v, want >= 0", eps.Imag)
			}
		})
	}
}

func TestMaterialPermittivity_ConcreteDispersion(t *testing.T) {
	reg := kb.NewMaterialKB()

	// ε″ = 0.0462·f^0.7822 (f in GHz): loss must grow with frequency.
	at1, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: model.MaterialConcrete}, 1e9)
	if err != nil {
		t.Fatalf("1 GHz: %v", err)
	}
	at60, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: model.MaterialConcrete}, 60e9)
	if err != nil {
		t.Fatalf("60 GHz: %v", err)
	}
	if at60.Imag <= at1.Imag {
		t.Errorf("ε″(60 GHz) = %v, want > ε″(1 GHz) = %v", at60.Imag, at1.Imag)
	}
	want := 0.0462 * math.Pow(60, 0.7822)
	if math.Abs(at60.Imag-want)/want > 1e-9 {
		t.Errorf("ε″(60 GHz) = %v, want %v", at60.Imag, want)
	}
}

func TestMaterialPermittivity_BandEnforcement(t *testing.T) {
	reg := kb.NewMaterialKB()

	// Brick is published for 1–40 GHz only.
	if _, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: model.MaterialBrick}, 60e9); !errors.Is(err, ErrOutOfValidityRange) {
		t.Errorf("above-band err = %v, want ErrOutOfValidityRange", err)
	}
	if _, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: model.MaterialBrick}, 1e6); !errors.Is(err, ErrOutOfValidityRange) {
		t.Errorf("below-band err = %v, want ErrOutOfValidityRange", err)
	}
}

func TestMaterialPermittivity_GenericFallback(t *testing.T) {
	reg := kb.NewMaterialKB()

	desc := model.MaterialDescriptor{
		Tag: "cast_iron_pipe_lining",
		Generic: &model.GenericDispersion{
			EpsReal:      4.2,
			RealExponent: 0.1,
			EpsImag:      0.05,
			ImagExponent: -0.2,
		},
	}

	// At the (default 1 GHz) reference frequency the power law collapses to
	// the supplied values.
	eps, err := MaterialPermittivity(reg, desc, 1e9)
	if err != nil {
		t.Fatalf("MaterialPermittivity: %v", err)
	}
	if math.Abs(eps.Real-4.2) > 1e-12 || math.Abs(eps.Imag-0.05) > 1e-12 {
		t.Errorf("ε = %+v at reference frequency, want (4.2, 0.05)", eps)
	}

	// Away from it the declared exponents apply.
	eps, err = MaterialPermittivity(reg, desc, 10e9)
	if err != nil {
		t.Fatalf("MaterialPermittivity(10 GHz): %v", err)
	}
	wantReal := 4.2 * math.Pow(10, -0.1)
	wantImag := 0.05 * math.Pow(10, 0.2)
	if math.Abs(eps.Real-wantReal) > 1e-12 || math.Abs(eps.Imag-wantImag) > 1e-12 {
		t.Errorf("ε = %+v at 10 GHz, want (%v, %v)", eps, wantReal, wantImag)
	}
}

func TestMaterialPermittivity_MissingParameters(t *testing.T) {
	reg := kb.NewMaterialKB()

	if _, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: "unobtainium"}, 1e9); !errors.Is(err, ErrMissingMaterialParameters) {
		t.Errorf("unknown tag err = %v, want ErrMissingMaterialParameters", err)
	}
	if _, err := MaterialPermittivity(reg, model.MaterialDescriptor{}, 1e9); !errors.Is(err, ErrMissingMaterialParameters) {
		t.Errorf("empty descriptor err = %v, want ErrMissingMaterialParameters", err)
	}
	if _, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: model.MaterialConcrete}, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero frequency err = %v, want ErrInvalidArgument", err)
	}
}

func TestMaterialPermittivity_UserRegisteredMaterial(t *testing.T) {
	reg := kb.NewMaterialKB()
	rec := kb.MaterialRecord{
		Tag: "pvc_pipe",
		A:   2.95, B: 0, C: 0.021, D: 0.95,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 100e9},
	}
	if err := reg.AddMaterial(rec); err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}

	eps, err := MaterialPermittivity(reg, model.MaterialDescriptor{Tag: "pvc_pipe"}, 2e9)
	if err != nil {
		t.Fatalf("MaterialPermittivity: %v", err)
	}
	if math.Abs(eps.Real-2.95) > 1e-12 {
		t.Errorf("ε′ = %v, want 2.95", eps.Real)
	}
}
