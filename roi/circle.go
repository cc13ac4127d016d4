package roi

import (
	"fmt"
	"image"

	"github.com/leafscan/roikit/internal/contour"
	"github.com/leafscan/roikit/internal/mask"
)

// Circle builds a circular ROI centered at (x, y) with radius r, validated
// against the reference image.
//
// The circle's bounding box [x-r, x+r] × [y-r, y+r] must lie inside the
// image, otherwise ErrOutOfBounds is returned. On success the filled disk is
// rasterized onto a zero mask matching the image dimensions and its boundary
// extracted, so the contour reflects the discretized disk rather than an
// ideal polygon.
func Circle(p *Params, img image.Image, x, y, r int) (*ROI, error) {
	device := p.nextDevice()
	return buildCircle(p, img, x, y, r, device, true)
}

// buildCircle is the shared circle construction path. Multi reuses it with
// draw=false so individual placements do not each trigger a visualization.
func buildCircle(p *Params, img image.Image, x, y, r int, device int64, draw bool) (*ROI, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if x-r < 0 || x+r > width || y-r < 0 || y+r > height {
		return nil, fmt.Errorf("circle at (%d,%d) with radius %d does not fit in %dx%d image: %w",
			x, y, r, width, height, ErrOutOfBounds)
	}

	m := mask.New(width, height)
	m.DrawDisk(x, y, r)

	cs, ns := contour.Find(m, contour.Tree)
	roi := newROI(cs, ns)

	if draw {
		if err := drawROI(p, img, roi.Contours, device); err != nil {
			return nil, err
		}
	}
	return roi, nil
}
