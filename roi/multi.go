package roi

import (
	"fmt"
	"image"

	"github.com/leafscan/roikit/internal/contour"
	"github.com/leafscan/roikit/internal/mask"
)

// MultiSpec describes where Multi places its circles. Exactly one of the two
// layouts must be populated:
//
//   - Grid: Coord, Spacing, Rows and Cols set; Centers nil. Circles are
//     placed row-major starting at Coord, offset by Spacing per column and
//     row.
//   - Explicit centers: Centers set; Coord, Spacing, Rows and Cols unset.
//
// Anything else (both layouts, neither, or a partial grid) is rejected with
// ErrLayout before any circle is placed.
type MultiSpec struct {
	// Coord is the center of the top-left circle in grid layout.
	Coord *Point

	// Spacing is the horizontal (X) and vertical (Y) distance between
	// adjacent circle centers in grid layout.
	Spacing *Point

	// Rows and Cols are the grid dimensions.
	Rows, Cols int

	// Centers lists explicit circle centers for custom placement.
	Centers []Point

	// Radius applies to every placed circle.
	Radius int
}

// centers resolves the placement description into the ordered list of circle
// centers, or ErrLayout when it selects neither or both layouts.
func (s *MultiSpec) centers() ([]Point, error) {
	grid := s.Coord != nil || s.Spacing != nil || s.Rows != 0 || s.Cols != 0
	explicit := s.Centers != nil

	switch {
	case grid && explicit:
		return nil, fmt.Errorf("grid parameters and explicit centers are mutually exclusive: %w", ErrLayout)
	case grid:
		if s.Coord == nil || s.Spacing == nil || s.Rows <= 0 || s.Cols <= 0 {
			return nil, fmt.Errorf("grid layout requires coord, spacing, rows and cols: %w", ErrLayout)
		}
		pts := make([]Point, 0, s.Rows*s.Cols)
		for i := 0; i < s.Rows; i++ {
			y := s.Coord.Y + i*s.Spacing.Y
			for j := 0; j < s.Cols; j++ {
				pts = append(pts, Point{X: s.Coord.X + j*s.Spacing.X, Y: y})
			}
		}
		return pts, nil
	case explicit:
		if len(s.Centers) == 0 {
			return nil, fmt.Errorf("explicit layout requires at least one center: %w", ErrLayout)
		}
		return s.Centers, nil
	default:
		return nil, fmt.Errorf("either grid parameters or explicit centers must be given: %w", ErrLayout)
	}
}

// Multi places repeated circular ROIs across the reference image, either on
// a regular grid or at explicit coordinates, per spec.
//
// Each placement goes through the circle builder's own bounds validation; a
// single out-of-bounds circle aborts the whole composition with no partial
// result. Individual placements never trigger a debug visualization; only
// one aggregate overlay of all placed circles is produced at the end, when a
// debug mode is active.
//
// The device counter advances once for Multi itself plus once per placed
// circle.
//
// The returned MultiROI holds one external contour/hierarchy pair per
// placement, in placement order.
func Multi(p *Params, img image.Image, spec MultiSpec) (*MultiROI, error) {
	p.nextDevice()

	centers, err := spec.centers()
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	combined := mask.New(bounds.Dx(), bounds.Dy())

	out := &MultiROI{ROIs: make([]*ROI, 0, len(centers))}
	for _, c := range centers {
		r, err := buildCircle(p, img, c.X, c.Y, spec.Radius, p.nextDevice(), false)
		if err != nil {
			return nil, err
		}
		out.ROIs = append(out.ROIs, r)
		combined.DrawDisk(c.X, c.Y, spec.Radius)
	}
	out.Count = len(out.ROIs)

	// One aggregate visualization of the accumulated mask. The combined
	// contour set exists only for this overlay and is not returned; the
	// frame is numbered with the counter value after all placements.
	if p.Debug != DebugNone {
		cs, _ := contour.Find(combined, contour.Tree)
		if err := drawROI(p, img, newROI(cs, nil).Contours, p.Device()); err != nil {
			return nil, err
		}
	}
	return out, nil
}
