package mask

import "math"

// Mask is a binary raster matching the dimensions of a reference image.
//
// Pixels hold 0 (background) or 1 (foreground). The pixel buffer is row-major:
// the pixel at (x, y) lives at index y*W + x. Coordinates follow the standard
// image convention with (0,0) at the top-left, X increasing rightward and Y
// increasing downward.
type Mask struct {
	W, H int
	Pix  []uint8
}

// New returns a zero-initialized (all background) mask of the given size.
func New(w, h int) *Mask {
	return &Mask{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At returns the value at (x, y). Out-of-range coordinates read as background.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return 0
	}
	return m.Pix[y*m.W+x]
}

// Set marks (x, y) as foreground. Out-of-range coordinates are ignored, so
// rasterizers may draw shapes that overhang the mask without corrupting memory.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.Pix[y*m.W+x] = 1
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	c := &Mask{W: m.W, H: m.H, Pix: make([]uint8, len(m.Pix))}
	copy(c.Pix, m.Pix)
	return c
}

// EdgeTouched reports whether any foreground pixel lies on the first row,
// last row, first column, or last column of the mask.
func (m *Mask) EdgeTouched() bool {
	if m.W == 0 || m.H == 0 {
		return false
	}
	for x := 0; x < m.W; x++ {
		if m.Pix[x] != 0 || m.Pix[(m.H-1)*m.W+x] != 0 {
			return true
		}
	}
	for y := 0; y < m.H; y++ {
		if m.Pix[y*m.W] != 0 || m.Pix[y*m.W+m.W-1] != 0 {
			return true
		}
	}
	return false
}

// DrawDisk rasterizes a filled disk of radius r centered at (cx, cy).
//
// A pixel is foreground when its center lies within the disk, i.e. when
// dx*dx + dy*dy <= r*r. Pixels falling outside the mask are clipped.
// A radius of 0 marks the single center pixel.
func (m *Mask) DrawDisk(cx, cy, r int) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= m.H {
			continue
		}
		dx := int(math.Sqrt(float64(r*r - dy*dy)))
		x1 := cx - dx
		x2 := cx + dx
		if x1 < 0 {
			x1 = 0
		}
		if x2 >= m.W {
			x2 = m.W - 1
		}
		row := y * m.W
		for x := x1; x <= x2; x++ {
			m.Pix[row+x] = 1
		}
	}
}

// DrawEllipse rasterizes a filled ellipse centered at (cx, cy) with semi-axis
// lengths r1 (along the rotated x-axis) and r2, rotated by angle degrees.
//
// The rotation is applied in image coordinates, so with Y increasing downward
// a positive angle rotates the major axis clockwise on screen. Pixels outside
// the mask are clipped; callers that need to detect overhang should inspect
// the border rows and columns afterwards (see EdgeTouched).
func (m *Mask) DrawEllipse(cx, cy, r1, r2 int, angle float64) {
	if r1 < 0 || r2 < 0 {
		return
	}
	theta := angle * math.Pi / 180
	cosA := math.Cos(theta)
	sinA := math.Sin(theta)

	// Half extents of the rotated ellipse's bounding box.
	a := float64(r1)
	b := float64(r2)
	ex := int(math.Ceil(math.Sqrt(a*a*cosA*cosA + b*b*sinA*sinA)))
	ey := int(math.Ceil(math.Sqrt(a*a*sinA*sinA + b*b*cosA*cosA)))

	if a == 0 {
		a = 0.5
	}
	if b == 0 {
		b = 0.5
	}

	for dy := -ey; dy <= ey; dy++ {
		y := cy + dy
		if y < 0 || y >= m.H {
			continue
		}
		row := y * m.W
		for dx := -ex; dx <= ex; dx++ {
			x := cx + dx
			if x < 0 || x >= m.W {
				continue
			}
			// Rotate the offset into the ellipse's own frame.
			u := (float64(dx)*cosA + float64(dy)*sinA) / a
			v := (-float64(dx)*sinA + float64(dy)*cosA) / b
			if u*u+v*v <= 1 {
				m.Pix[row+x] = 1
			}
		}
	}
}
