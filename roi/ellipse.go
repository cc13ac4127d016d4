package roi

import (
	"fmt"
	"image"

	"github.com/leafscan/roikit/internal/contour"
	"github.com/leafscan/roikit/internal/mask"
)

// Ellipse builds an elliptical ROI centered at (x, y) with semi-axis lengths
// r1 and r2, rotated by angle degrees, validated against the reference image.
//
// Bounds checking differs from Circle: computing the analytic extents of a
// rotated ellipse is more involved, so the filled ellipse is rasterized
// first and the mask's border rows and columns inspected afterwards. Any
// foreground pixel on row 0, the last row, column 0, or the last column
// means the ellipse touched or crossed the image edge, and ErrOutOfBounds is
// returned even when the center and axes look plausible analytically.
func Ellipse(p *Params, img image.Image, x, y, r1, r2 int, angle float64) (*ROI, error) {
	device := p.nextDevice()

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	m := mask.New(width, height)
	m.DrawEllipse(x, y, r1, r2, angle)

	if m.EdgeTouched() {
		return nil, fmt.Errorf("ellipse at (%d,%d) with axes %dx%d rotated %.1f deg does not fit in %dx%d image: %w",
			x, y, r1, r2, angle, width, height, ErrOutOfBounds)
	}

	cs, ns := contour.Find(m, contour.Tree)
	roi := newROI(cs, ns)

	if err := drawROI(p, img, roi.Contours, device); err != nil {
		return nil, err
	}
	return roi, nil
}
