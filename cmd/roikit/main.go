// Command roikit builds ROI geometry for a batch of images described by a
// YAML scenario file and writes the resulting contour descriptors as JSON,
// optionally saving debug overlays alongside.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leafscan/roikit/internal/config"
	"github.com/leafscan/roikit/internal/imgcache"
	"github.com/leafscan/roikit/roi"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type shapeResult struct {
	Type  string        `json:"type"`
	ROI   *roi.ROI      `json:"roi,omitempty"`
	Multi *roi.MultiROI `json:"multi,omitempty"`
}

type imageResult struct {
	Path   string        `json:"path"`
	Shapes []shapeResult `json:"shapes"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "Path to the YAML scenario file (required)")
	outDir := flag.String("out", ".", "Directory for JSON results")
	version := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *version {
		fmt.Printf("roikit %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}
	if *scenarioPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if err := run(*scenarioPath, *outDir); err != nil {
		log.Fatalf("roikit: %v", err)
	}
}

func run(scenarioPath, outDir string) error {
	scenario, err := config.Read(scenarioPath)
	if err != nil {
		return err
	}
	if scenario.Debug == "plot" {
		return fmt.Errorf("debug mode \"plot\" needs an interactive display; the CLI supports \"none\" and \"print\"")
	}

	params := roi.NewParams()
	params.OutDir = scenario.OutDir
	if scenario.LineColor != "" {
		params.LineColor = scenario.LineColor
	}
	if scenario.Debug == "print" {
		params.Debug = roi.DebugPrint
		if params.OutDir != "" {
			if err := os.MkdirAll(params.OutDir, 0755); err != nil {
				return fmt.Errorf("failed to create debug output directory: %w", err)
			}
		}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cache := imgcache.New()
	results := make([]imageResult, len(scenario.Images))

	var g errgroup.Group
	for i, task := range scenario.Images {
		i, task := i, task
		g.Go(func() error {
			res, err := processImage(params, cache, task)
			if err != nil {
				return fmt.Errorf("%s: %w", task.Path, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		name := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		path := filepath.Join(outDir, name+"_rois.json")
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results for %s: %w", res.Path, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Printf("%s: %d shape(s) -> %s", res.Path, len(res.Shapes), path)
	}
	return nil
}

func processImage(params *roi.Params, cache *imgcache.Cache, task config.ImageTask) (*imageResult, error) {
	img, err := cache.Load(task.Path)
	if err != nil {
		return nil, err
	}

	res := &imageResult{Path: task.Path, Shapes: make([]shapeResult, 0, len(task.Shapes))}
	for i, shape := range task.Shapes {
		sr, err := buildShape(params, cache, img, shape)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, shape.Type, err)
		}
		res.Shapes = append(res.Shapes, *sr)
	}
	return res, nil
}

func buildShape(params *roi.Params, cache *imgcache.Cache, img image.Image, shape config.Shape) (*shapeResult, error) {
	res := &shapeResult{Type: shape.Type}
	var err error

	switch shape.Type {
	case "rectangle":
		res.ROI, err = roi.Rectangle(params, img, shape.X, shape.Y, shape.Height, shape.Width)
	case "circle":
		res.ROI, err = roi.Circle(params, img, shape.X, shape.Y, shape.Radius)
	case "ellipse":
		res.ROI, err = roi.Ellipse(params, img, shape.X, shape.Y, shape.R1, shape.R2, shape.Angle)
	case "binary":
		var maskImg image.Image
		maskImg, err = cache.Load(shape.Mask)
		if err == nil {
			res.ROI, err = roi.FromBinaryImage(params, maskImg, img)
		}
	case "multi":
		res.Multi, err = roi.Multi(params, img, multiSpec(shape))
	default:
		err = fmt.Errorf("unknown shape type %q", shape.Type)
	}

	if err != nil {
		return nil, err
	}
	return res, nil
}

// multiSpec translates the YAML shape fields into a placement spec; layout
// validation itself is left to roi.Multi.
func multiSpec(shape config.Shape) roi.MultiSpec {
	spec := roi.MultiSpec{Radius: shape.Radius}
	if len(shape.Centers) > 0 {
		spec.Centers = make([]roi.Point, len(shape.Centers))
		for i, c := range shape.Centers {
			spec.Centers[i] = roi.Point{X: c[0], Y: c[1]}
		}
		return spec
	}
	spec.Coord = &roi.Point{X: shape.X, Y: shape.Y}
	if len(shape.Spacing) == 2 {
		spec.Spacing = &roi.Point{X: shape.Spacing[0], Y: shape.Spacing[1]}
	}
	spec.Rows = shape.Rows
	spec.Cols = shape.Cols
	return spec
}
