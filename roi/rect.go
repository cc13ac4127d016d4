package roi

import (
	"fmt"
	"image"
)

// Rectangle builds a rectangular ROI with its top-left corner at (x, y) and
// the given height and width, validated against the reference image.
//
// Parameters:
//   - p: Debug and counter state. Must not be nil.
//   - img: Reference image the ROI must fit inside. Only its dimensions are
//     read unless a debug mode is active.
//   - x, y: Top-left corner of the rectangle.
//   - h, w: Height and width of the rectangle in pixels.
//
// Returns:
//   - *ROI: A single 4-point contour tracing the rectangle's boundary, with
//     a trivial single-entry hierarchy.
//   - error: ErrOutOfBounds if the rectangle does not fit inside the image.
//
// No rasterization is performed; the contour is computed directly from the
// corner coordinates. The vertices are ordered (x,y), (x,y+h-1),
// (x+w-1,y+h-1), (x+w-1,y), tracing the boundary in a consistent direction.
func Rectangle(p *Params, img image.Image, x, y, h, w int) (*ROI, error) {
	device := p.nextDevice()

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if x < 0 || y < 0 || x+w > width || y+h > height {
		return nil, fmt.Errorf("rectangle at (%d,%d) with size %dx%d does not fit in %dx%d image: %w",
			x, y, w, h, width, height, ErrOutOfBounds)
	}

	r := &ROI{
		Contours: []Contour{{
			{X: x, Y: y},
			{X: x, Y: y + h - 1},
			{X: x + w - 1, Y: y + h - 1},
			{X: x + w - 1, Y: y},
		}},
		Hierarchy: Hierarchy{{Next: -1, Prev: -1, FirstChild: -1, Parent: -1}},
	}

	if err := drawROI(p, img, r.Contours, device); err != nil {
		return nil, err
	}
	return r, nil
}
