package mask

import (
	"image"
	"image/color"
	"testing"
)

// grayImage builds a grayscale image from rows of characters, mapping '.'
// to 0 and anything else to 255.
func grayImage(rows []string) *image.Gray {
	h := len(rows)
	w := len(rows[0])
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, ch := range row {
			if ch != '.' {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	img := grayImage([]string{
		"....",
		".##.",
		"....",
	})

	m := FromImage(img)
	if m.W != 4 || m.H != 3 {
		t.Fatalf("mask size = %dx%d, want 4x3", m.W, m.H)
	}
	if m.At(1, 1) == 0 || m.At(2, 1) == 0 {
		t.Error("nonzero pixels should become foreground")
	}
	if m.At(0, 0) != 0 || m.At(3, 2) != 0 {
		t.Error("zero pixels should stay background")
	}
}

func TestDistinctValues(t *testing.T) {
	binary := grayImage([]string{
		"..#",
		"#..",
	})
	if n := DistinctValues(binary); n != 2 {
		t.Errorf("binary image has %d distinct values, want 2", n)
	}

	uniform := image.NewGray(image.Rect(0, 0, 3, 3))
	if n := DistinctValues(uniform); n != 1 {
		t.Errorf("uniform image has %d distinct values, want 1", n)
	}

	three := image.NewGray(image.Rect(0, 0, 3, 1))
	three.SetGray(1, 0, color.Gray{Y: 128})
	three.SetGray(2, 0, color.Gray{Y: 255})
	if n := DistinctValues(three); n != 3 {
		t.Errorf("three-level image has %d distinct values, want 3", n)
	}
}
