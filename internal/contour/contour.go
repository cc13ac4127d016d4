package contour

import (
	"github.com/leafscan/roikit/internal/mask"
)

// Point is a pixel coordinate on a traced boundary.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Node records the nesting relationships of one contour. Each field is the
// index of another contour in the same result set, or -1 when there is none.
// The field order matches the common [next, previous, first child, parent]
// convention used by contour-tree representations.
type Node struct {
	Next       int `json:"next"`
	Prev       int `json:"prev"`
	FirstChild int `json:"first_child"`
	Parent     int `json:"parent"`
}

// Mode selects which boundaries Find retrieves.
type Mode int

const (
	// Tree retrieves every boundary, outer and hole alike, and reports the
	// full parent/child nesting between them.
	Tree Mode = iota

	// External retrieves only the outermost boundaries. The returned nodes
	// have no parents and no children; siblings are chained in discovery
	// order.
	External
)

// Neighbor offsets in clockwise order starting east, with Y increasing
// downward: E, SE, S, SW, W, NW, N, NE.
var (
	dx8 = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	dy8 = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// border is the bookkeeping record for one traced boundary. Borders are
// numbered from 2; number 1 is reserved for the image frame.
type border struct {
	hole   bool
	parent int // border number of the enclosing border, 0 or 1 when none
}

// Find extracts the boundaries of all foreground regions in a binary mask
// using border following (Suzuki & Abe). Every boundary pixel is retained;
// no polygonal simplification is applied.
//
// The returned contour list and node list are always the same length. An
// empty mask produces empty (non-nil) slices. Contours appear in raster-scan
// discovery order: for a single filled shape the outer boundary comes first,
// followed by any hole boundaries nested inside it.
func Find(m *mask.Mask, mode Mode) ([][]Point, []Node) {
	w, h := m.W, m.H

	// Working copy of the mask. Values: 0 background, 1 unvisited foreground,
	// and +/-n for pixels claimed by border number n.
	f := make([]int32, w*h)
	for i, v := range m.Pix {
		if v != 0 {
			f[i] = 1
		}
	}

	at := func(x, y int) int32 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return f[y*w+x]
	}

	// borders[n] describes border number n+1; the frame is a hole border
	// with no parent.
	borders := []border{{hole: true, parent: 0}}
	var contours [][]Point

	nbd := 1
	for y := 0; y < h; y++ {
		lnbd := 1
		for x := 0; x < w; x++ {
			fv := f[y*w+x]
			if fv == 0 {
				continue
			}

			start := false
			isHole := false
			fromDir := 0
			if fv == 1 && at(x-1, y) == 0 {
				// Outer border: unvisited foreground with background to
				// the west.
				start = true
				fromDir = 4
			} else if fv >= 1 && at(x+1, y) == 0 {
				// Hole border: foreground with background to the east.
				start = true
				isHole = true
				fromDir = 0
				if fv > 1 {
					lnbd = int(fv)
				}
			}

			if start {
				nbd++
				// The parent of the new border depends on whether the last
				// border met on this row is of the same kind.
				enclosing := borders[lnbd-1]
				parent := lnbd
				if isHole == enclosing.hole {
					parent = enclosing.parent
				}
				borders = append(borders, border{hole: isHole, parent: parent})
				contours = append(contours, trace(f, w, h, x, y, fromDir, int32(nbd)))
			}

			if v := f[y*w+x]; v != 1 {
				if v < 0 {
					lnbd = int(-v)
				} else {
					lnbd = int(v)
				}
			}
		}
	}

	nodes := buildNodes(borders)
	if mode == External {
		return externalOnly(contours, nodes)
	}
	if contours == nil {
		contours = [][]Point{}
	}
	return contours, nodes
}

// trace follows one border starting at (x0, y0), marking visited pixels in f
// with the border number and collecting every boundary pixel in order.
// fromDir points at the background pixel that triggered the border start.
func trace(f []int32, w, h, x0, y0, fromDir int, nbd int32) []Point {
	at := func(x, y int) int32 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return f[y*w+x]
	}

	// Look clockwise around the start pixel for a nonzero neighbor.
	d1 := -1
	for i := 0; i < 8; i++ {
		d := (fromDir + i) % 8
		if at(x0+dx8[d], y0+dy8[d]) != 0 {
			d1 = d
			break
		}
	}
	if d1 == -1 {
		// Isolated pixel.
		f[y0*w+x0] = -nbd
		return []Point{{X: x0, Y: y0}}
	}

	x1, y1 := x0+dx8[d1], y0+dy8[d1]
	px, py := x1, y1 // previously examined neighbor
	cx, cy := x0, y0 // current border pixel

	pts := make([]Point, 0, 32)
	// A border never revisits a pixel more than four times; the cap turns a
	// tracing bug into a truncated contour instead of a hang.
	maxSteps := 4*w*h + 8
	for steps := 0; steps < maxSteps; steps++ {
		// Direction from the current pixel back to the previous one.
		back := 0
		for d := 0; d < 8; d++ {
			if cx+dx8[d] == px && cy+dy8[d] == py {
				back = d
				break
			}
		}

		// Search counterclockwise from just past the previous pixel for the
		// next border pixel, noting whether the east neighbor was examined
		// while it held background.
		nx, ny := -1, -1
		eastSeenZero := false
		for i := 1; i <= 8; i++ {
			d := ((back-i)%8 + 8) % 8
			qx, qy := cx+dx8[d], cy+dy8[d]
			if at(qx, qy) != 0 {
				nx, ny = qx, qy
				break
			}
			if d == 0 {
				eastSeenZero = true
			}
		}

		// Mark the current pixel. A pixel whose east neighbor is background
		// gets the negative number so it is never mistaken for a later hole
		// border start.
		idx := cy*w + cx
		if eastSeenZero {
			f[idx] = -nbd
		} else if f[idx] == 1 {
			f[idx] = nbd
		}
		pts = append(pts, Point{X: cx, Y: cy})

		// Back at the start in the starting configuration: the border is
		// closed.
		if nx == x0 && ny == y0 && cx == x1 && cy == y1 {
			break
		}
		px, py = cx, cy
		cx, cy = nx, ny
	}
	return pts
}

// buildNodes converts the per-border parent records into the flat
// next/prev/first-child/parent representation. borders[0] is the frame and
// produces no node; border number n maps to contour index n-2.
func buildNodes(borders []border) []Node {
	n := len(borders) - 1
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{Next: -1, Prev: -1, FirstChild: -1, Parent: -1}
	}

	// last sibling seen per parent index; roots key -1
	lastSibling := make(map[int]int, n)
	for i := 0; i < n; i++ {
		parent := borders[i+1].parent - 2 // border number -> contour index
		if parent < -1 {
			parent = -1
		}
		nodes[i].Parent = parent
		if prev, ok := lastSibling[parent]; ok {
			nodes[i].Prev = prev
			nodes[prev].Next = i
		} else if parent >= 0 {
			nodes[parent].FirstChild = i
		}
		lastSibling[parent] = i
	}
	return nodes
}

// externalOnly filters a full contour tree down to its root contours and
// rebuilds the sibling chain among them.
func externalOnly(contours [][]Point, nodes []Node) ([][]Point, []Node) {
	outC := [][]Point{}
	outN := []Node{}
	for i, node := range nodes {
		if node.Parent != -1 {
			continue
		}
		outC = append(outC, contours[i])
		outN = append(outN, Node{Next: -1, Prev: -1, FirstChild: -1, Parent: -1})
	}
	for i := range outN {
		if i > 0 {
			outN[i].Prev = i - 1
		}
		if i < len(outN)-1 {
			outN[i].Next = i + 1
		}
	}
	return outC, outN
}
