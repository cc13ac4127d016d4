package roi

import "github.com/leafscan/roikit/internal/contour"

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Contour is an ordered sequence of pixel coordinates describing a closed
// boundary. Consecutive points are adjacent boundary pixels (or, for contours
// built directly from geometry such as rectangles, polygon vertices).
type Contour []Point

// HierarchyNode records how one contour nests among the others in the same
// ROI. Each field is the index of another contour, or -1 when there is none.
type HierarchyNode struct {
	Next       int `json:"next"`        // Next sibling at the same nesting level
	Prev       int `json:"prev"`        // Previous sibling at the same nesting level
	FirstChild int `json:"first_child"` // First contour nested directly inside this one
	Parent     int `json:"parent"`      // Contour this one is nested inside
}

// Hierarchy is the nesting structure parallel to a contour set. Its length
// always equals the number of contours it describes.
type Hierarchy []HierarchyNode

// ROI is the descriptor returned by every shape builder: a set of contours
// and the parallel hierarchy recording their nesting. It is the canonical
// input to downstream masking and filtering operations.
//
// An ROI is immutable once returned; builders never retain references to it.
type ROI struct {
	Contours  []Contour `json:"contours"`
	Hierarchy Hierarchy `json:"hierarchy"`
}

// MultiROI is the result of composing repeated circular ROIs. ROIs holds one
// descriptor per placed circle, in placement order (row-major for grids).
type MultiROI struct {
	// ROIs is the list of per-placement descriptors. Each holds the placed
	// circle's external contour and its trivial hierarchy.
	ROIs []*ROI `json:"rois"`

	// Count is the number of placed circles.
	Count int `json:"count"`
}

// newROI converts the contour package's representation into an ROI.
func newROI(cs [][]contour.Point, ns []contour.Node) *ROI {
	r := &ROI{
		Contours:  make([]Contour, len(cs)),
		Hierarchy: make(Hierarchy, len(ns)),
	}
	for i, c := range cs {
		pts := make(Contour, len(c))
		for j, p := range c {
			pts[j] = Point{X: p.X, Y: p.Y}
		}
		r.Contours[i] = pts
	}
	for i, n := range ns {
		r.Hierarchy[i] = HierarchyNode{
			Next:       n.Next,
			Prev:       n.Prev,
			FirstChild: n.FirstChild,
			Parent:     n.Parent,
		}
	}
	return r
}
