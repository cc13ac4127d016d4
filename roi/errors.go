package roi

import "errors"

// Sentinel errors returned by the shape builders. Wrapped errors carry the
// offending parameters; match with errors.Is.
var (
	// ErrNotBinary reports that the input mask image does not contain
	// exactly two distinct intensity values.
	ErrNotBinary = errors.New("input image is not binary")

	// ErrOutOfBounds reports that the requested shape would extend outside
	// the reference image's pixel extents.
	ErrOutOfBounds = errors.New("ROI extends outside of the image")

	// ErrLayout reports that Multi's inputs select neither a valid grid
	// layout nor a valid explicit-centers layout.
	ErrLayout = errors.New("invalid multi-ROI layout")
)
