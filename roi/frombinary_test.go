package roi

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createMaskImage builds a grayscale image with value 255 inside the given
// rectangle and 0 elsewhere.
func createMaskImage(width, height, x1, y1, x2, y2 int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return img
}

func TestFromBinaryImage(t *testing.T) {
	ref := createTestImage(40, 40, color.White)
	bin := createMaskImage(40, 40, 10, 10, 25, 30)
	p := NewParams()

	r, err := FromBinaryImage(p, bin, ref)
	if err != nil {
		t.Fatalf("FromBinaryImage failed: %v", err)
	}
	if len(r.Contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(r.Contours))
	}
	if len(r.Hierarchy) != len(r.Contours) {
		t.Fatalf("hierarchy length %d != contour count %d", len(r.Hierarchy), len(r.Contours))
	}

	minX, minY, maxX, maxY := contourBounds(r.Contours[0])
	if minX != 10 || minY != 10 || maxX != 25 || maxY != 30 {
		t.Errorf("bounding box (%d,%d)-(%d,%d), want (10,10)-(25,30)", minX, minY, maxX, maxY)
	}
}

func TestFromBinaryImage_Nested(t *testing.T) {
	ref := createTestImage(40, 40, color.White)
	bin := createMaskImage(40, 40, 5, 5, 30, 30)
	// Punch a hole so the mask has an internal boundary.
	for y := 12; y <= 22; y++ {
		for x := 12; x <= 22; x++ {
			bin.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	p := NewParams()

	r, err := FromBinaryImage(p, bin, ref)
	if err != nil {
		t.Fatalf("FromBinaryImage failed: %v", err)
	}
	if len(r.Contours) != 2 {
		t.Fatalf("got %d contours, want outer plus hole", len(r.Contours))
	}
	if len(r.Hierarchy) != 2 {
		t.Fatalf("hierarchy length %d, want 2", len(r.Hierarchy))
	}
	if r.Hierarchy[0].FirstChild != 1 || r.Hierarchy[1].Parent != 0 {
		t.Errorf("nesting not recorded: outer %+v, hole %+v", r.Hierarchy[0], r.Hierarchy[1])
	}
}

func TestFromBinaryImage_NotBinary(t *testing.T) {
	ref := createTestImage(20, 20, color.White)

	// Uniform image: one distinct value.
	uniform := image.NewGray(image.Rect(0, 0, 20, 20))
	p := NewParams()
	r, err := FromBinaryImage(p, uniform, ref)
	if !errors.Is(err, ErrNotBinary) {
		t.Errorf("uniform mask: err = %v, want ErrNotBinary", err)
	}
	if r != nil {
		t.Error("failed build must not return a partial ROI")
	}

	// Three distinct values.
	three := createMaskImage(20, 20, 5, 5, 10, 10)
	three.SetGray(15, 15, color.Gray{Y: 128})
	if _, err := FromBinaryImage(p, three, ref); !errors.Is(err, ErrNotBinary) {
		t.Errorf("three-level mask: err = %v, want ErrNotBinary", err)
	}
}

func TestFromBinaryImage_DisjointRegions(t *testing.T) {
	ref := createTestImage(40, 40, color.White)
	bin := createMaskImage(40, 40, 2, 2, 10, 10)
	for y := 20; y <= 30; y++ {
		for x := 20; x <= 30; x++ {
			bin.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	p := NewParams()

	r, err := FromBinaryImage(p, bin, ref)
	if err != nil {
		t.Fatalf("FromBinaryImage failed: %v", err)
	}
	if len(r.Contours) != 2 {
		t.Fatalf("got %d contours, want 2 disjoint regions", len(r.Contours))
	}
	if r.Hierarchy[0].Parent != -1 || r.Hierarchy[1].Parent != -1 {
		t.Errorf("disjoint regions should both be roots: %+v, %+v", r.Hierarchy[0], r.Hierarchy[1])
	}
}
