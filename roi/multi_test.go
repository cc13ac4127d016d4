package roi

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestMulti_Grid(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	p := NewParams()

	m, err := Multi(p, img, MultiSpec{
		Coord:   &Point{X: 20, Y: 20},
		Spacing: &Point{X: 10, Y: 10},
		Rows:    2,
		Cols:    2,
		Radius:  5,
	})
	if err != nil {
		t.Fatalf("Multi failed: %v", err)
	}
	if m.Count != 4 || len(m.ROIs) != 4 {
		t.Fatalf("got %d placements, want 4", m.Count)
	}

	wantCenters := []Point{{20, 20}, {30, 20}, {20, 30}, {30, 30}}
	for i, r := range m.ROIs {
		if len(r.Contours) != 1 {
			t.Fatalf("placement %d has %d contours, want 1", i, len(r.Contours))
		}
		if len(r.Hierarchy) != 1 {
			t.Fatalf("placement %d hierarchy length %d, want 1", i, len(r.Hierarchy))
		}
		minX, minY, maxX, maxY := contourBounds(r.Contours[0])
		cx := (minX + maxX) / 2
		cy := (minY + maxY) / 2
		if cx != wantCenters[i].X || cy != wantCenters[i].Y {
			t.Errorf("placement %d centered at (%d,%d), want %v", i, cx, cy, wantCenters[i])
		}
	}
}

func TestMulti_ExplicitCenters(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	p := NewParams()

	m, err := Multi(p, img, MultiSpec{
		Centers: []Point{{X: 25, Y: 25}, {X: 70, Y: 60}},
		Radius:  8,
	})
	if err != nil {
		t.Fatalf("Multi failed: %v", err)
	}
	if m.Count != 2 {
		t.Fatalf("got %d placements, want 2", m.Count)
	}

	minX, _, maxX, _ := contourBounds(m.ROIs[1].Contours[0])
	if (minX+maxX)/2 != 70 {
		t.Errorf("second placement centered at x=%d, want 70", (minX+maxX)/2)
	}
}

func TestMulti_LayoutErrors(t *testing.T) {
	img := createTestImage(100, 100, color.White)

	cases := []struct {
		name string
		spec MultiSpec
	}{
		{"both modes", MultiSpec{
			Coord:   &Point{X: 20, Y: 20},
			Spacing: &Point{X: 10, Y: 10},
			Rows:    2,
			Cols:    2,
			Centers: []Point{{X: 30, Y: 30}},
			Radius:  5,
		}},
		{"neither mode", MultiSpec{Radius: 5}},
		{"grid without spacing", MultiSpec{
			Coord:  &Point{X: 20, Y: 20},
			Rows:   2,
			Cols:   2,
			Radius: 5,
		}},
		{"grid without rows", MultiSpec{
			Coord:   &Point{X: 20, Y: 20},
			Spacing: &Point{X: 10, Y: 10},
			Cols:    2,
			Radius:  5,
		}},
		{"empty center list", MultiSpec{Centers: []Point{}, Radius: 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParams()
			m, err := Multi(p, img, tc.spec)
			if !errors.Is(err, ErrLayout) {
				t.Errorf("err = %v, want ErrLayout", err)
			}
			if m != nil {
				t.Error("failed composition must not return a partial result")
			}
		})
	}
}

func TestMulti_OutOfBoundsAborts(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	p := NewParams()

	// The second grid row pushes circles past the bottom edge.
	m, err := Multi(p, img, MultiSpec{
		Coord:   &Point{X: 50, Y: 90},
		Spacing: &Point{X: 10, Y: 20},
		Rows:    2,
		Cols:    1,
		Radius:  5,
	})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
	if m != nil {
		t.Error("aborted composition must not return partial placements")
	}
}

func TestMulti_DeviceIncrements(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	p := NewParams()

	if _, err := Multi(p, img, MultiSpec{
		Coord:   &Point{X: 20, Y: 20},
		Spacing: &Point{X: 10, Y: 10},
		Rows:    2,
		Cols:    2,
		Radius:  5,
	}); err != nil {
		t.Fatalf("Multi failed: %v", err)
	}

	// One increment for Multi itself plus one per placed circle.
	if p.Device() != 5 {
		t.Errorf("device counter = %d, want 5", p.Device())
	}
}

func TestMulti_SingleAggregateOverlay(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	dir := t.TempDir()
	p := NewParams()
	p.Debug = DebugPrint
	p.OutDir = dir

	if _, err := Multi(p, img, MultiSpec{
		Coord:   &Point{X: 20, Y: 20},
		Spacing: &Point{X: 10, Y: 10},
		Rows:    2,
		Cols:    2,
		Radius:  5,
	}); err != nil {
		t.Fatalf("Multi failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("got %d debug frames %v, want exactly one aggregate overlay", len(entries), names)
	}
	if _, err := os.Stat(filepath.Join(dir, "5_roi.png")); err != nil {
		t.Errorf("aggregate overlay should be numbered with the final counter value: %v", err)
	}
}
