// Package roi generates Region-Of-Interest geometry for image-analysis
// pipelines.
//
// Each builder converts a parametric shape description (rectangle, circle,
// rotated ellipse, or an arbitrary binary mask) into an ROI descriptor: a
// set of contours plus a parallel hierarchy recording how they nest. Multi
// composes repeated circular ROIs on a grid or at explicit coordinates.
// Downstream masking and filtering operators consume the descriptors; this
// package only constructs and validates them.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Every contour point of a
// successfully built ROI lies within [0,width) × [0,height) of the reference
// image; parametric builders enforce this at construction time and fail with
// ErrOutOfBounds otherwise. Binary-mask input is trusted as already valid.
//
// # Debug Visualization
//
// Builders optionally overlay their contours on a copy of the reference
// image, controlled by the Params passed into every call: save to a numbered
// file (DebugPrint), route to a Displayer (DebugPlot), or do nothing
// (DebugNone, the default). The caller's image is never mutated. Params also
// owns the device counter that numbers the saved frames; it advances once
// per builder call whether or not visualization is active.
//
// # Error Handling
//
// All failures are fatal to the call and return no partial result. The three
// sentinel errors ErrNotBinary, ErrOutOfBounds and ErrLayout classify every
// validation failure and are matched with errors.Is; visualization I/O
// failures propagate wrapped from the underlying image-saving library.
package roi
