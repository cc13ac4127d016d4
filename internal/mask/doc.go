// Package mask provides binary raster masks and shape rasterizers.
//
// A Mask is the intermediate representation between a parametric shape
// description (disk, rotated ellipse) and its boundary contours: shapes are
// rasterized onto a zero-initialized mask matching the reference image's
// dimensions, and the contour package then extracts boundaries from it.
//
// Masks can also be built from existing images (FromImage) for workflows
// that start from an arbitrary binary segmentation rather than a parametric
// shape. DistinctValues supports validating that such an input really is
// binary before trusting it.
package mask
