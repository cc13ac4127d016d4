package roi

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
)

// DebugMode selects what the builders do with their debug visualization.
type DebugMode int

const (
	// DebugNone disables visualization entirely. Builders have no side
	// effects in this mode.
	DebugNone DebugMode = iota

	// DebugPrint saves each visualization to "<device>_roi.png" under the
	// configured output directory.
	DebugPrint

	// DebugPlot routes each visualization to the configured Displayer.
	DebugPlot
)

// String returns the mode name as used in configuration files.
func (m DebugMode) String() string {
	switch m {
	case DebugPrint:
		return "print"
	case DebugPlot:
		return "plot"
	default:
		return "none"
	}
}

// Displayer renders an image to an interactive display surface. It is only
// consulted in DebugPlot mode; implementations live with the caller (a GUI
// window, a notebook cell, a test double).
type Displayer interface {
	Display(img image.Image) error
}

// Params carries the debug and bookkeeping state shared by the shape
// builders. Every builder takes a *Params; there is no process-wide state.
//
// The device counter increments by exactly one per builder call (Multi also
// increments it once per placed circle) and is used to produce unique,
// ordered debug filenames. The counter is atomic, so a single Params may be
// shared by builders running on multiple goroutines.
//
// Params must not be copied after first use.
type Params struct {
	// Debug selects the visualization mode. The zero value disables it.
	Debug DebugMode

	// OutDir is the directory DebugPrint writes into. Empty means the
	// current directory.
	OutDir string

	// LineColor is the hex color ("#RRGGBB") used for contour overlays.
	// Empty or unparseable values fall back to the default highlight blue.
	LineColor string

	// Display receives overlays in DebugPlot mode. Required for that mode.
	Display Displayer

	device atomic.Int64
}

// NewParams returns Params with visualization disabled and the default
// highlight color.
func NewParams() *Params {
	return &Params{LineColor: defaultLineColor}
}

// Device returns the current value of the device counter: the number of
// builder invocations recorded so far.
func (p *Params) Device() int64 {
	return p.device.Load()
}

// nextDevice increments the device counter and returns the new value.
// Called exactly once at the top of every builder.
func (p *Params) nextDevice() int64 {
	return p.device.Add(1)
}

// lineColor resolves the configured highlight color, falling back to the
// default when unset or invalid.
func (p *Params) lineColor() color.NRGBA {
	hex := p.LineColor
	if hex == "" {
		hex = defaultLineColor
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(defaultLineColor)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
