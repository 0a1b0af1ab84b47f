package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/signalsfoundry/itu-propagation/kb"
	"github.com/signalsfoundry/itu-propagation/model"
)

// Rec. ITU-R P.2040-2 building-material permittivity. Tabulated materials
// use the published per-material power-law fits held in the knowledge base;
// anything else falls back to caller-supplied generic dispersion parameters.

// genericReferenceHz is the reference frequency assumed when a generic
// descriptor leaves ReferenceHz unset.
const genericReferenceHz = 1e9

// MaterialPermittivity returns the complex relative permittivity of a
// building material at the given frequency.
//
// Resolution order: a tabulated tag wins; a descriptor whose tag is absent
// from the registry falls back to its Generic parameters; a descriptor with
// neither fails with ErrMissingMaterialParameters.
func MaterialPermittivity(reg *kb.MaterialKB, desc model.MaterialDescriptor, freqHz float64) (model.ComplexPermittivity, error) {
	if freqHz <= 0 {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: frequency must be > 0 Hz, got %g",
			ErrInvalidArgument, freqHz)
	}

	if desc.Tag != "" && reg != nil {
		rec, err := reg.GetMaterial(desc.Tag)
		switch {
		case err == nil:
			return tabulatedPermittivity(rec, freqHz)
		case !errors.Is(err, kb.ErrMaterialNotFound):
			return model.ComplexPermittivity{}, err
		}
	}

	if desc.Generic == nil {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: %q", ErrMissingMaterialParameters, desc.Tag)
	}
	return genericPermittivity(*desc.Generic, freqHz)
}

func tabulatedPermittivity(rec kb.MaterialRecord, freqHz float64) (model.ComplexPermittivity, error) {
	if !rec.Band.Contains(freqHz) {
		return model.ComplexPermittivity{}, fmt.Errorf(
			"%w: frequency %g Hz outside %q validity band [%g, %g] Hz",
			ErrOutOfValidityRange, freqHz, rec.Tag, rec.Band.MinHz, rec.Band.MaxHz)
	}

	fGHz := model.GHzFromHz(freqHz)
	return model.ComplexPermittivity{
		Real: rec.A * math.Pow(fGHz, rec.B),
		Imag: rec.C * math.Pow(fGHz, rec.D),
	}, nil
}

func genericPermittivity(g model.GenericDispersion, freqHz float64) (model.ComplexPermittivity, error) {
	if g.EpsReal <= 0 {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: generic ε′ must be > 0, got %g",
			ErrMissingMaterialParameters, g.EpsReal)
	}
	if g.EpsImag < 0 {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: generic ε″ must be >= 0, got %g",
			ErrMissingMaterialParameters, g.EpsImag)
	}

	refHz := g.ReferenceHz
	if refHz == 0 {
		refHz = genericReferenceHz
	}
	if refHz < 0 {
		return model.ComplexPermittivity{}, fmt.Errorf("%w: reference frequency must be > 0 Hz, got %g",
			ErrInvalidArgument, refHz)
	}

	ratio := freqHz / refHz
	eps := model.ComplexPermittivity{
		Real: g.EpsReal * math.Pow(ratio, -g.RealExponent),
	}
	if g.EpsImag > 0 {
		eps.Imag = g.EpsImag * math.Pow(ratio, -g.ImagExponent)
	}
	return eps, nil
}
