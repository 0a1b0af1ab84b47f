package model

// Material identifies a tabulated P.2040 building material or ground class.
type Material string

const (
	MaterialVacuum        Material = "vacuum"
	MaterialConcrete      Material = "concrete"
	MaterialBrick         Material = "brick"
	MaterialPlasterboard  Material = "plasterboard"
	MaterialWood          Material = "wood"
	MaterialGlass         Material = "glass"
	MaterialCeilingBoard  Material = "ceiling_board"
	MaterialChipboard     Material = "chipboard"
	MaterialPlywood       Material = "plywood"
	MaterialMarble        Material = "marble"
	MaterialFloorboard    Material = "floorboard"
	MaterialMetal         Material = "metal"
	MaterialVeryDryGround Material = "very_dry_ground"
	MaterialMedDryGround  Material = "medium_dry_ground"
	MaterialWetGround     Material = "wet_ground"
)

// GenericDispersion carries caller-supplied power-law parameters for media
// that are not in the coefficient table:
//
//	ε′(f) = EpsReal · (f/f₀)^(−RealExponent)
//	ε″(f) = EpsImag · (f/f₀)^(−ImagExponent)
//
// where f₀ = ReferenceHz (1 GHz when left zero). EpsImag may be zero for a
// medium modelled as lossless.
type GenericDispersion struct {
	EpsReal      float64 `json:"EpsReal"`
	RealExponent float64 `json:"RealExponent"`
	EpsImag      float64 `json:"EpsImag,omitempty"`
	ImagExponent float64 `json:"ImagExponent,omitempty"`
	ReferenceHz  float64 `json:"ReferenceHz,omitempty"`
}

// MaterialDescriptor selects either a tabulated material by tag or a generic
// power-law medium. When both are set the tag is tried first and Generic
// serves as the fallback for tags missing from the registry.
type MaterialDescriptor struct {
	Tag     Material           `json:"Tag,omitempty"`
	Generic *GenericDispersion `json:"Generic,omitempty"`
}
