package kb

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/itu-propagation/model"
)

// TableSummary is a small summary of what was loaded from JSON. It's mainly
// useful for logging from main().
type TableSummary struct {
	Materials []model.Material
	Textures  []string
}

// internal JSON shapes – kept unexported so we're free to evolve them.
type materialTableJSON struct {
	Materials []materialJSON         `json:"materials"`
	Textures  map[string]textureJSON `json:"textures"`
}

type materialJSON struct {
	Tag     string  `json:"tag"`
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	C       float64 `json:"c"`
	D       float64 `json:"d"`
	MinGHz  float64 `json:"min_ghz"`
	MaxGHz  float64 `json:"max_ghz"`
	Comment string  `json:"comment,omitempty"` // ignored; provenance notes
}

type textureJSON struct {
	Sand float64 `json:"sand"`
	Clay float64 `json:"clay"`
	Silt float64 `json:"silt"`
}

// LoadMaterialTable reads a supplementary JSON coefficient table from r and
// registers its entries into the knowledge base. Frequencies are given in
// GHz in the file format (matching how the Recommendations publish fits) and
// converted to Hz at this boundary.
//
// It fails on JSON/structural errors and on the first record the KB rejects;
// entries registered before the failure remain registered, mirroring how the
// direct AddMaterial calls behave.
func LoadMaterialTable(kb *MaterialKB, r io.Reader) (*TableSummary, error) {
	if kb == nil {
		return nil, fmt.Errorf("nil MaterialKB")
	}

	var raw materialTableJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode material table: %w", err)
	}

	summary := &TableSummary{}

	for _, m := range raw.Materials {
		rec := MaterialRecord{
			Tag: model.Material(m.Tag),
			A:   m.A,
			B:   m.B,
			C:   m.C,
			D:   m.D,
			Band: model.FrequencyBand{
				MinHz: model.HzFromGHz(m.MinGHz),
				MaxHz: model.HzFromGHz(m.MaxGHz),
			},
		}
		if err := kb.AddMaterial(rec); err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Tag, err)
		}
		summary.Materials = append(summary.Materials, rec.Tag)
	}

	for name, t := range raw.Textures {
		if err := kb.AddTexture(name, SoilTexture{Sand: t.Sand, Clay: t.Clay, Silt: t.Silt}); err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		summary.Textures = append(summary.Textures, name)
	}

	return summary, nil
}
