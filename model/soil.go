package model

// DefaultParticleDensity is the specific gravity of a typical dry mixture of
// soil constituents. P.527 quotes values between 2.5 and 2.7 depending on
// composition.
const DefaultParticleDensity = 2.65

// SoilComposition characterises a soil mixture for the P.527 dielectric
// mixing model. Texture fractions are ratios in [0,1] and must sum to 1;
// validation happens in the model, never by silent renormalisation.
type SoilComposition struct {
	Sand float64 `json:"Sand"`
	Clay float64 `json:"Clay"`
	Silt float64 `json:"Silt"`

	// VolumetricWater is the volumetric water content as a ratio in (0,1].
	VolumetricWater float64 `json:"VolumetricWater"`

	// ParticleDensity is the specific gravity of the dry mix. Zero means
	// "unspecified" and is defaulted to DefaultParticleDensity by the model.
	ParticleDensity float64 `json:"ParticleDensity,omitempty"`
}
