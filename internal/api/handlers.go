package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signalsfoundry/itu-propagation/core"
	"github.com/signalsfoundry/itu-propagation/kb"
	"github.com/signalsfoundry/itu-propagation/model"
)

// Outcome labels recorded on the evaluations counter. These double as the
// machine-readable error kinds in JSON error responses.
const (
	outcomeOK                = "ok"
	outcomeBadRequest        = "bad_request"
	outcomeInvalidArgument   = "invalid_argument"
	outcomeOutOfRange        = "out_of_validity_range"
	outcomeInvalidGeometry   = "invalid_geometry"
	outcomeMissingParameters = "missing_material_parameters"
	outcomeUnknownTexture    = "unknown_texture"
	outcomeCancelled         = "cancelled"
)

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeModelError maps the core sentinel taxonomy onto HTTP statuses and
// returns the outcome label for metrics.
func writeModelError(w http.ResponseWriter, err error) string {
	kind := outcomeInvalidArgument
	status := http.StatusBadRequest

	switch {
	case errors.Is(err, core.ErrOutOfValidityRange):
		kind = outcomeOutOfRange
		status = http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrInvalidGeometry):
		kind = outcomeInvalidGeometry
	case errors.Is(err, core.ErrMissingMaterialParameters):
		kind = outcomeMissingParameters
		status = http.StatusNotFound
	case errors.Is(err, kb.ErrTextureNotFound):
		kind = outcomeUnknownTexture
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kind = outcomeCancelled
		status = http.StatusRequestTimeout
	}

	writeJSON(w, status, errorResponse{Kind: kind, Message: err.Error()})
	return kind
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v any) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Kind: outcomeBadRequest, Message: err.Error()})
		return outcomeBadRequest, false
	}
	return "", true
}

type freeSpaceRequest struct {
	FrequencyHz float64 `json:"frequency_hz"`
	DistanceM   float64 `json:"distance_m"`
}

type freeSpaceResponse struct {
	LossDB float64 `json:"loss_db"`
}

func (s *Server) handleFreeSpace(w http.ResponseWriter, r *http.Request) string {
	var req freeSpaceRequest
	if outcome, ok := decodeRequest(w, r, &req); !ok {
		return outcome
	}

	loss, err := core.FreeSpacePathLoss(req.FrequencyHz, req.DistanceM)
	if err != nil {
		return writeModelError(w, err)
	}
	writeJSON(w, http.StatusOK, freeSpaceResponse{LossDB: loss})
	return outcomeOK
}

type waterRequest struct {
	SalinityPpt  float64 `json:"salinity_ppt"`
	TemperatureC float64 `json:"temperature_c"`
	FrequencyHz  float64 `json:"frequency_hz"`

	// FrequenciesHz, when set, requests a sweep instead of a single point.
	FrequenciesHz []float64 `json:"frequencies_hz,omitempty"`
}

type permittivityResponse struct {
	EpsReal     float64 `json:"eps_real"`
	EpsImag     float64 `json:"eps_imag"`
	LossTangent float64 `json:"loss_tangent"`
}

type permittivitySweepResponse struct {
	Points []permittivityResponse `json:"points"`
}

func permittivityPoint(eps model.ComplexPermittivity) permittivityResponse {
	return permittivityResponse{
		EpsReal:     eps.Real,
		EpsImag:     eps.Imag,
		LossTangent: eps.LossTangent(),
	}
}

func (s *Server) handleWater(w http.ResponseWriter, r *http.Request) string {
	var req waterRequest
	if outcome, ok := decodeRequest(w, r, &req); !ok {
		return outcome
	}

	eval := func(fHz float64) (model.ComplexPermittivity, error) {
		return core.SaltWaterPermittivity(req.SalinityPpt, req.TemperatureC, fHz)
	}

	if len(req.FrequenciesHz) > 0 {
		return s.writeSweep(w, r, req.FrequenciesHz, eval)
	}

	eps, err := eval(req.FrequencyHz)
	if err != nil {
		return writeModelError(w, err)
	}
	writeJSON(w, http.StatusOK, permittivityPoint(eps))
	return outcomeOK
}

type soilRequest struct {
	// Texture names a P.527 preset; when set it overrides the explicit
	// fractions below.
	Texture string `json:"texture,omitempty"`

	Sand            float64 `json:"sand"`
	Clay            float64 `json:"clay"`
	Silt            float64 `json:"silt"`
	VolumetricWater float64 `json:"volumetric_water"`
	ParticleDensity float64 `json:"particle_density,omitempty"`

	TemperatureC float64 `json:"temperature_c"`
	FrequencyHz  float64 `json:"frequency_hz"`
}

func (s *Server) handleSoil(w http.ResponseWriter, r *http.Request) string {
	var req soilRequest
	if outcome, ok := decodeRequest(w, r, &req); !ok {
		return outcome
	}

	comp := model.SoilComposition{
		Sand:            req.Sand,
		Clay:            req.Clay,
		Silt:            req.Silt,
		VolumetricWater: req.VolumetricWater,
		ParticleDensity: req.ParticleDensity,
	}
	if req.Texture != "" {
		var err error
		comp, err = s.materials.Composition(req.Texture, req.VolumetricWater)
		if err != nil {
			return writeModelError(w, err)
		}
		comp.ParticleDensity = req.ParticleDensity
	}

	eps, err := core.SoilPermittivity(comp, req.TemperatureC, req.FrequencyHz)
	if err != nil {
		return writeModelError(w, err)
	}
	writeJSON(w, http.StatusOK, permittivityPoint(eps))
	return outcomeOK
}

type materialRequest struct {
	Tag     string                   `json:"tag,omitempty"`
	Generic *model.GenericDispersion `json:"generic,omitempty"`

	FrequencyHz   float64   `json:"frequency_hz"`
	FrequenciesHz []float64 `json:"frequencies_hz,omitempty"`
}

func (s *Server) handleMaterial(w http.ResponseWriter, r *http.Request) string {
	var req materialRequest
	if outcome, ok := decodeRequest(w, r, &req); !ok {
		return outcome
	}

	desc := model.MaterialDescriptor{
		Tag:     model.Material(req.Tag),
		Generic: req.Generic,
	}
	eval := func(fHz float64) (model.ComplexPermittivity, error) {
		return core.MaterialPermittivity(s.materials, desc, fHz)
	}

	if len(req.FrequenciesHz) > 0 {
		return s.writeSweep(w, r, req.FrequenciesHz, eval)
	}

	eps, err := eval(req.FrequencyHz)
	if err != nil {
		return writeModelError(w, err)
	}
	writeJSON(w, http.StatusOK, permittivityPoint(eps))
	return outcomeOK
}

type waveguideRequest struct {
	AM          float64 `json:"a_m"`
	BM          float64 `json:"b_m"`
	EpsReal     float64 `json:"eps_real"`
	EpsImag     float64 `json:"eps_imag"`
	FrequencyHz float64 `json:"frequency_hz"`
}

type waveguideResponse struct {
	CutoffHz    float64 `json:"cutoff_hz"`
	AlphaNpPerM float64 `json:"alpha_np_per_m"`
	BetaRadPerM float64 `json:"beta_rad_per_m"`
	AttenDBPerM float64 `json:"atten_db_per_m"`
}

func (s *Server) handleWaveguide(w http.ResponseWriter, r *http.Request) string {
	var req waveguideRequest
	if outcome, ok := decodeRequest(w, r, &req); !ok {
		return outcome
	}

	res, err := core.WaveguideAttenuation(
		model.WaveguideGeometry{A: req.AM, B: req.BM},
		model.ComplexPermittivity{Real: req.EpsReal, Imag: req.EpsImag},
		req.FrequencyHz,
	)
	if err != nil {
		return writeModelError(w, err)
	}
	writeJSON(w, http.StatusOK, waveguideResponse{
		CutoffHz:    res.CutoffHz,
		AlphaNpPerM: res.AlphaNpPerM,
		BetaRadPerM: res.BetaRadPerM,
		AttenDBPerM: res.AttenDBPerM,
	})
	return outcomeOK
}

func (s *Server) writeSweep(w http.ResponseWriter, r *http.Request, freqsHz []float64, eval func(float64) (model.ComplexPermittivity, error)) string {
	points, err := core.Sweep(r.Context(), freqsHz, eval)
	if err != nil {
		return writeModelError(w, err)
	}

	resp := permittivitySweepResponse{Points: make([]permittivityResponse, len(points))}
	for i, eps := range points {
		resp.Points[i] = permittivityPoint(eps)
	}
	writeJSON(w, http.StatusOK, resp)
	return outcomeOK
}
