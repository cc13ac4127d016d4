package roi

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultLineColor is the highlight used for contour overlays.
	defaultLineColor = "#0000FF"

	// lineThickness is the stroke width of drawn contours in pixels.
	lineThickness = 5
)

// drawROI overlays the contour set on a copy of the reference image and
// routes the result according to the debug mode. The caller's image is never
// mutated: the overlay is drawn on a cloned buffer, which also promotes
// grayscale input to a color representation so the highlight is renderable.
//
// In DebugPrint mode the overlay is saved as "<device>_roi.png" under
// p.OutDir. In DebugPlot mode it is handed to p.Display. With debug off this
// is a no-op, which is the contract that keeps visualization strictly
// optional for every builder.
func drawROI(p *Params, img image.Image, contours []Contour, device int64) error {
	if p.Debug == DebugNone {
		return nil
	}

	ref := imaging.Clone(img)
	col := p.lineColor()
	for _, c := range contours {
		drawContour(ref, c, col)
	}
	drawLabel(ref, fmt.Sprintf("%d_roi", device), col)

	switch p.Debug {
	case DebugPrint:
		name := fmt.Sprintf("%d_roi.png", device)
		if err := imaging.Save(ref, filepath.Join(p.OutDir, name)); err != nil {
			return fmt.Errorf("failed to save ROI overlay: %w", err)
		}
	case DebugPlot:
		if p.Display == nil {
			return fmt.Errorf("debug mode %q requires a Displayer", p.Debug)
		}
		if err := p.Display.Display(ref); err != nil {
			return fmt.Errorf("failed to display ROI overlay: %w", err)
		}
	}
	return nil
}

// drawContour strokes a closed contour by connecting consecutive points,
// wrapping from the last point back to the first.
func drawContour(dst *image.NRGBA, c Contour, col color.NRGBA) {
	switch len(c) {
	case 0:
		return
	case 1:
		stamp(dst, c[0].X, c[0].Y, col)
		return
	}
	for i := range c {
		next := c[(i+1)%len(c)]
		drawLine(dst, c[i].X, c[i].Y, next.X, next.Y, col)
	}
}

// drawLine draws a thick line segment using Bresenham stepping, stamping a
// disk of the stroke width at every step.
func drawLine(dst *image.NRGBA, x0, y0, x1, y1 int, col color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		stamp(dst, x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// stamp fills a disk of the stroke width centered at (x, y), clipped to the
// image bounds.
func stamp(dst *image.NRGBA, x, y int, col color.NRGBA) {
	r := lineThickness / 2
	bounds := dst.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			px, py := x+dx, y+dy
			if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
				continue
			}
			dst.SetNRGBA(px, py, col)
		}
	}
}

// drawLabel stamps the device tag in the top-left corner of the overlay so
// saved frames remain identifiable even after renaming.
func drawLabel(dst *image.NRGBA, text string, col color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 16),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
