package model

// WaveguideGeometry is a rectangular waveguide cross-section in metres.
// By convention A is the broad dimension and A > B > 0.
type WaveguideGeometry struct {
	A float64 `json:"A"`
	B float64 `json:"B"`
}

// PropagationResult describes the dominant (TE10) mode of a dielectric-filled
// rectangular waveguide at one operating frequency. Below cutoff the mode is
// evanescent: AlphaNpPerM dominates and BetaRadPerM collapses towards zero.
type PropagationResult struct {
	CutoffHz    float64 `json:"CutoffHz"`
	AlphaNpPerM float64 `json:"AlphaNpPerM"`
	BetaRadPerM float64 `json:"BetaRadPerM"`
	AttenDBPerM float64 `json:"AttenDBPerM"`
}
