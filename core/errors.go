package core

import "errors"

// Sentinel errors for the model surface. Callers match with errors.Is; model
// functions wrap these with the offending value for context.
var (
	// ErrInvalidArgument flags non-physical inputs: zero or negative
	// frequency, distance, moisture content, and the like.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfValidityRange flags inputs outside the Recommendation's
	// documented applicability band. The models never extrapolate.
	ErrOutOfValidityRange = errors.New("outside model validity range")

	// ErrInvalidGeometry flags degenerate or inverted waveguide dimensions.
	ErrInvalidGeometry = errors.New("invalid waveguide geometry")

	// ErrMissingMaterialParameters flags a material lookup that matched no
	// table entry and carried no generic power-law fallback.
	ErrMissingMaterialParameters = errors.New("unknown material without generic parameters")
)
