package core

import (
	"context"
	"errors"
	"testing"

	"github.com/signalsfoundry/itu-propagation/model"
)

func TestSweep_PreservesInputOrder(t *testing.T) {
	freqs := []float64{1e9, 2e9, 5e9, 10e9, 20e9, 50e9}

	got, err := Sweep(context.Background(), freqs, func(fHz float64) (model.ComplexPermittivity, error) {
		return PureWaterPermittivity(20, fHz)
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(got) != len(freqs) {
		t.Fatalf("len(results) = %d, want %d", len(got), len(freqs))
	}
	for i, fHz := range freqs {
		want, err := PureWaterPermittivity(20, fHz)
		if err != nil {
			t.Fatalf("PureWaterPermittivity(%g Hz): %v", fHz, err)
		}
		if got[i] != want {
			t.Errorf("results[%d] = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestSweep_PropagatesModelError(t *testing.T) {
	// The third point is outside the water validity band and must surface
	// its error from the sweep.
	freqs := []float64{1e9, 2e9, 5e12}

	_, err := Sweep(context.Background(), freqs, func(fHz float64) (model.ComplexPermittivity, error) {
		return PureWaterPermittivity(20, fHz)
	})
	if !errors.Is(err, ErrOutOfValidityRange) {
		t.Errorf("err = %v, want ErrOutOfValidityRange", err)
	}
}

func TestSweep_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	freqs := make([]float64, 1000)
	for i := range freqs {
		freqs[i] = 1e9 + float64(i)*1e6
	}

	_, err := Sweep(ctx, freqs, func(fHz float64) (model.ComplexPermittivity, error) {
		return PureWaterPermittivity(20, fHz)
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if err == context.Canceled {
		t.Errorf("err is the bare context error, want it wrapped with sweep context")
	}
}

func TestSweep_EmptyInput(t *testing.T) {
	got, err := Sweep(context.Background(), nil, func(fHz float64) (float64, error) {
		return FreeSpacePathLoss(fHz, 10)
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if got != nil {
		t.Errorf("results = %v, want nil for empty sweep", got)
	}
}
