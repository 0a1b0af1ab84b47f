package kb

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/signalsfoundry/itu-propagation/model"
)

var (
	ErrMaterialExists   = errors.New("material already registered")
	ErrMaterialNotFound = errors.New("material not found")
	ErrMaterialBadInput = errors.New("invalid material record")
	ErrTextureNotFound  = errors.New("soil texture not found")
	ErrTextureBadInput  = errors.New("invalid soil texture")
)

// MaterialRecord holds the P.2040 dispersion coefficients for one material:
//
//	ε′(f) = A·f^B    ε″(f) = C·f^D    (f in GHz)
//
// together with the frequency band the fit is valid over.
type MaterialRecord struct {
	Tag  model.Material      `json:"Tag"`
	A    float64             `json:"A"`
	B    float64             `json:"B"`
	C    float64             `json:"C"`
	D    float64             `json:"D"`
	Band model.FrequencyBand `json:"Band"`
}

// SoilTexture is a named sand/clay/silt mixture from P.527, as fractions
// summing to 1.
type SoilTexture struct {
	Sand float64 `json:"Sand"`
	Clay float64 `json:"Clay"`
	Silt float64 `json:"Silt"`
}

// MaterialKB is the read-only coefficient registry backing the P.2040 and
// P.527 models. It is constructed once at start with the Recommendation
// tables preloaded; AddMaterial exists so deployments can register
// supplementary fitted materials before handing the KB to the models.
type MaterialKB struct {
	mu sync.RWMutex

	materials map[model.Material]MaterialRecord
	textures  map[string]SoilTexture

	// onCountChange, when set, is notified with the registry size after
	// every successful mutation. Drives the registered-materials gauge.
	onCountChange func(int)
}

// NewMaterialKB constructs a registry preloaded with the P.2040-2 building
// material coefficient table and the P.527 soil texture presets.
func NewMaterialKB() *MaterialKB {
	kb := &MaterialKB{
		materials: make(map[model.Material]MaterialRecord, len(p2040Table)),
		textures:  make(map[string]SoilTexture, len(soilTextures)),
	}
	for _, rec := range p2040Table {
		kb.materials[rec.Tag] = rec
	}
	for name, tex := range soilTextures {
		kb.textures[name] = tex
	}
	return kb
}

// OnCountChange registers a callback invoked with the material count after
// every mutation, and immediately with the current count.
func (kb *MaterialKB) OnCountChange(fn func(int)) {
	kb.mu.Lock()
	kb.onCountChange = fn
	n := len(kb.materials)
	kb.mu.Unlock()
	if fn != nil {
		fn(n)
	}
}

// AddMaterial registers a fitted material record. It returns an error if the
// tag is already present or the record is degenerate.
func (kb *MaterialKB) AddMaterial(rec MaterialRecord) error {
	if rec.Tag == "" {
		return fmt.Errorf("%w: empty tag", ErrMaterialBadInput)
	}
	if rec.A <= 0 {
		return fmt.Errorf("%w: material %q has non-positive ε′ coefficient", ErrMaterialBadInput, rec.Tag)
	}
	if rec.C < 0 {
		return fmt.Errorf("%w: material %q has negative ε″ coefficient", ErrMaterialBadInput, rec.Tag)
	}
	if rec.Band.MinHz <= 0 || rec.Band.MaxHz < rec.Band.MinHz {
		return fmt.Errorf("%w: material %q has degenerate validity band", ErrMaterialBadInput, rec.Tag)
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()

	if _, exists := kb.materials[rec.Tag]; exists {
		return fmt.Errorf("%w: %q", ErrMaterialExists, rec.Tag)
	}
	kb.materials[rec.Tag] = rec
	if kb.onCountChange != nil {
		kb.onCountChange(len(kb.materials))
	}
	return nil
}

// GetMaterial returns the record for the given tag.
func (kb *MaterialKB) GetMaterial(tag model.Material) (MaterialRecord, error) {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	rec, ok := kb.materials[tag]
	if !ok {
		return MaterialRecord{}, fmt.Errorf("%w: %q", ErrMaterialNotFound, tag)
	}
	return rec, nil
}

// ListMaterials returns a snapshot slice of all registered records.
func (kb *MaterialKB) ListMaterials() []MaterialRecord {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	res := make([]MaterialRecord, 0, len(kb.materials))
	for _, rec := range kb.materials {
		res = append(res, rec)
	}
	return res
}

// MaterialCount returns the number of registered materials.
func (kb *MaterialKB) MaterialCount() int {
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	return len(kb.materials)
}

// textureSumTol bounds how far a texture's fractions may drift from 1.
const textureSumTol = 1e-9

// AddTexture registers a named soil texture. Re-registering a name replaces
// the preset, so deployments can override the built-in mixtures.
func (kb *MaterialKB) AddTexture(name string, tex SoilTexture) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrTextureBadInput)
	}
	if tex.Sand <= 0 || tex.Clay <= 0 || tex.Silt <= 0 {
		return fmt.Errorf("%w: texture %q fractions must be > 0 (sand=%g clay=%g silt=%g)",
			ErrTextureBadInput, name, tex.Sand, tex.Clay, tex.Silt)
	}
	if sum := tex.Sand + tex.Clay + tex.Silt; math.Abs(sum-1) > textureSumTol {
		return fmt.Errorf("%w: texture %q fractions sum to %.12f, want 1",
			ErrTextureBadInput, name, sum)
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.textures[name] = tex
	return nil
}

// GetTexture returns a named P.527 soil texture preset.
func (kb *MaterialKB) GetTexture(name string) (SoilTexture, error) {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	tex, ok := kb.textures[name]
	if !ok {
		return SoilTexture{}, fmt.Errorf("%w: %q", ErrTextureNotFound, name)
	}
	return tex, nil
}

// ListTextureNames returns the names of all soil texture presets.
func (kb *MaterialKB) ListTextureNames() []string {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	res := make([]string, 0, len(kb.textures))
	for name := range kb.textures {
		res = append(res, name)
	}
	return res
}

// Composition builds a SoilComposition from a named texture preset.
func (kb *MaterialKB) Composition(texture string, volumetricWater float64) (model.SoilComposition, error) {
	tex, err := kb.GetTexture(texture)
	if err != nil {
		return model.SoilComposition{}, err
	}
	return model.SoilComposition{
		Sand:            tex.Sand,
		Clay:            tex.Clay,
		Silt:            tex.Silt,
		VolumetricWater: volumetricWater,
	}, nil
}
