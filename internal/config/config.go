package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the top-level description of a batch ROI run: which images to
// process, which shapes to build on each, and how debug output is handled.
type Scenario struct {
	// Debug is the visualization mode: "none" (or empty), "print" or "plot".
	Debug string `yaml:"debug,omitempty"`

	// OutDir receives debug overlays in print mode.
	OutDir string `yaml:"outdir,omitempty"`

	// LineColor overrides the overlay highlight color ("#RRGGBB").
	LineColor string `yaml:"line_color,omitempty"`

	// Images lists the per-image tasks, processed independently.
	Images []ImageTask `yaml:"images"`
}

// ImageTask pairs one reference image with the shapes to build on it.
type ImageTask struct {
	Path   string  `yaml:"path"`
	Shapes []Shape `yaml:"shapes"`
}

// Shape describes a single ROI to build. Type selects which of the remaining
// fields apply.
type Shape struct {
	// Type is one of "rectangle", "circle", "ellipse", "binary" or "multi".
	Type string `yaml:"type"`

	// X and Y locate the shape: top-left corner for rectangles, center for
	// circles and ellipses, top-left circle center for multi grids.
	X int `yaml:"x,omitempty"`
	Y int `yaml:"y,omitempty"`

	// Width and Height size rectangles.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	// Radius sizes circles and multi placements.
	Radius int `yaml:"radius,omitempty"`

	// R1, R2 and Angle describe ellipses.
	R1    int     `yaml:"r1,omitempty"`
	R2    int     `yaml:"r2,omitempty"`
	Angle float64 `yaml:"angle,omitempty"`

	// Mask is the binary mask image path for "binary" shapes.
	Mask string `yaml:"mask,omitempty"`

	// Spacing ([dx, dy]), Rows and Cols describe a multi grid; Centers
	// ([[x, y], ...]) describes explicit multi placement.
	Spacing []int   `yaml:"spacing,omitempty,flow"`
	Rows    int     `yaml:"rows,omitempty"`
	Cols    int     `yaml:"cols,omitempty"`
	Centers [][]int `yaml:"centers,omitempty,flow"`
}

// Read loads a scenario from a YAML file.
func Read(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Write saves a scenario to a YAML file.
func Write(s *Scenario, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks structural requirements that YAML decoding cannot express.
func (s *Scenario) Validate() error {
	switch s.Debug {
	case "", "none", "print", "plot":
	default:
		return fmt.Errorf("unknown debug mode %q", s.Debug)
	}
	if len(s.Images) == 0 {
		return fmt.Errorf("scenario lists no images")
	}
	for i, task := range s.Images {
		if task.Path == "" {
			return fmt.Errorf("image %d has no path", i)
		}
		for j, shape := range task.Shapes {
			switch shape.Type {
			case "rectangle", "circle", "ellipse", "multi":
			case "binary":
				if shape.Mask == "" {
					return fmt.Errorf("image %d shape %d: binary shape needs a mask path", i, j)
				}
			default:
				return fmt.Errorf("image %d shape %d: unknown type %q", i, j, shape.Type)
			}
			if len(shape.Spacing) != 0 && len(shape.Spacing) != 2 {
				return fmt.Errorf("image %d shape %d: spacing must be [dx, dy]", i, j)
			}
			for _, c := range shape.Centers {
				if len(c) != 2 {
					return fmt.Errorf("image %d shape %d: each center must be [x, y]", i, j)
				}
			}
		}
	}
	return nil
}
