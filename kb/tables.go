package kb

import "github.com/signalsfoundry/itu-propagation/model"

// p2040Table is the building material coefficient table from Rec. ITU-R
// P.2040-2, Table 3. ε′ = A·f^B, ε″ = C·f^D with f in GHz; the band column
// is the frequency range the fit was published for. The table is copied into
// each MaterialKB at construction and never mutated afterwards.
var p2040Table = []MaterialRecord{
	{Tag: model.MaterialVacuum, A: 1, B: 0, C: 0, D: 0,
		Band: model.FrequencyBand{MinHz: 1e6, MaxHz: 100e9}},
	{Tag: model.MaterialConcrete, A: 5.24, B: 0, C: 0.0462, D: 0.7822,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 100e9}},
	{Tag: model.MaterialBrick, A: 3.91, B: 0, C: 0.0238, D: 0.16,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 40e9}},
	{Tag: model.MaterialPlasterboard, A: 2.73, B: 0, C: 0.0085, D: 0.9395,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 100e9}},
	{Tag: model.MaterialWood, A: 1.99, B: 0, C: 0.0047, D: 1.0718,
		Band: model.FrequencyBand{MinHz: 1e6, MaxHz: 100e9}},
	{Tag: model.MaterialGlass, A: 6.31, B: 0, C: 0.0036, D: 1.3394,
		Band: model.FrequencyBand{MinHz: 0.1e9, MaxHz: 100e9}},
	{Tag: model.MaterialCeilingBoard, A: 1.48, B: 0, C: 0.0011, D: 1.075,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 100e9}},
	{Tag: model.MaterialChipboard, A: 2.58, B: 0, C: 0.0217, D: 0.78,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 100e9}},
	{Tag: model.MaterialPlywood, A: 2.71, B: 0, C: 0.33, D: 0,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 40e9}},
	{Tag: model.MaterialMarble, A: 7.074, B: 0, C: 0.055, D: 0.9262,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 60e9}},
	{Tag: model.MaterialFloorboard, A: 3.66, B: 0, C: 0.0044, D: 1.3515,
		Band: model.FrequencyBand{MinHz: 50e9, MaxHz: 100e9}},
	{Tag: model.MaterialMetal, A: 1, B: 0, C: 1e7, D: 0,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 100e9}},
	{Tag: model.MaterialVeryDryGround, A: 3, B: 0, C: 0.00015, D: 2.52,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 10e9}},
	{Tag: model.MaterialMedDryGround, A: 15, B: -0.1, C: 0.035, D: 1.63,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 10e9}},
	{Tag: model.MaterialWetGround, A: 30, B: -0.4, C: 0.15, D: 1.30,
		Band: model.FrequencyBand{MinHz: 1e9, MaxHz: 10e9}},
}

// soilTextures are the sand/clay/silt presets from P.527, expressed as
// fractions rather than percentages.
var soilTextures = map[string]SoilTexture{
	"clay":            {Sand: 0.20, Clay: 0.60, Silt: 0.20},
	"sandy_clay":      {Sand: 0.50, Clay: 0.40, Silt: 0.10},
	"silty_clay":      {Sand: 0.10, Clay: 0.45, Silt: 0.45},
	"clay_loam":       {Sand: 0.35, Clay: 0.30, Silt: 0.35},
	"sandy_clay_loam": {Sand: 0.60, Clay: 0.25, Silt: 0.15},
	"silty_clay_loam": {Sand: 0.15, Clay: 0.325, Silt: 0.525},
	"loam":            {Sand: 0.40, Clay: 0.20, Silt: 0.40},
	"silty_loam":      {Sand: 0.225, Clay: 0.15, Silt: 0.625},
	"sandy_loam":      {Sand: 0.65, Clay: 0.10, Silt: 0.25},
	"sand":            {Sand: 0.90, Clay: 0.05, Silt: 0.05},
	"loamy_sand":      {Sand: 0.80, Clay: 0.10, Silt: 0.10},
	"silt":            {Sand: 0.10, Clay: 0.10, Silt: 0.80},
}
