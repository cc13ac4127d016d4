package roi

import (
	"fmt"
	"image"

	"github.com/leafscan/roikit/internal/contour"
	"github.com/leafscan/roikit/internal/mask"
)

// FromBinaryImage builds an ROI from an existing binary mask image.
//
// Parameters:
//   - p: Debug and counter state. Must not be nil.
//   - binImg: The mask to extract boundaries from. It must contain exactly
//     two distinct intensity values; anything else returns ErrNotBinary.
//   - img: Reference image used only for the debug visualization.
//
// All boundaries are extracted in tree mode, so disjoint regions and holes
// nested inside regions each contribute a contour, with the hierarchy
// recording their parent/child relationships. Every boundary pixel is
// retained. The mask's geometry is trusted as already within bounds.
func FromBinaryImage(p *Params, binImg, img image.Image) (*ROI, error) {
	device := p.nextDevice()

	if n := mask.DistinctValues(binImg); n != 2 {
		return nil, fmt.Errorf("mask has %d distinct intensity values, want 2: %w", n, ErrNotBinary)
	}

	cs, ns := contour.Find(mask.FromImage(binImg), contour.Tree)
	roi := newROI(cs, ns)

	if err := drawROI(p, img, roi.Contours, device); err != nil {
		return nil, err
	}
	return roi, nil
}
