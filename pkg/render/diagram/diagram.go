package diagram

import (
	"github.com/brian-c/string-spacing-calculator/pkg/errors"
	"github.com/brian-c/string-spacing-calculator/pkg/spacing"
)

const (
	// DefaultHeight is the frame height in inches.
	DefaultHeight = 0.5
	// DefaultHairline is the stroke width of the frame and centerlines.
	DefaultHairline = 0.005
	// DefaultFill is the string rectangle color.
	DefaultFill = "lime"
	// DefaultFillOpacity is the string rectangle opacity.
	DefaultFillOpacity = 0.5
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New(errors.ErrCodeEmptyLayout, "no layout to draw")

// Diagram is a drawable layout. Units are inches.
type Diagram struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Hairline    float64 `json:"hairline"`
	Fill        string  `json:"fill"`
	FillOpacity float64 `json:"fill_opacity"`
	Shapes      []Shape `json:"shapes"`
}

// Shape is one string: its left edge, gauge and centerline.
type Shape struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Center float64 `json:"center"`
}

// Empty reports whether the diagram has no strings.
func (d Diagram) Empty() bool { return len(d.Shapes) == 0 }

// Option configures [Build].
type Option func(*Diagram)

func WithHeight(h float64) Option   { return func(d *Diagram) { d.Height = h } }
func WithHairline(w float64) Option { return func(d *Diagram) { d.Hairline = w } }

// WithFill sets the string color (any SVG color) and opacity.
func WithFill(color string, opacity float64) Option {
	return func(d *Diagram) {
		d.Fill = color
		d.FillOpacity = opacity
	}
}

// Build places the strings of l inside a frame of the layout's width.
// Each chunk advances a running offset by its gap and width; zero-width
// chunks draw nothing but still advance it.
func Build(l spacing.Layout, opts ...Option) Diagram {
	d := Diagram{
		Width:       l.Params.Width,
		Height:      DefaultHeight,
		Hairline:    DefaultHairline,
		Fill:        DefaultFill,
		FillOpacity: DefaultFillOpacity,
	}
	for _, opt := range opts {
		opt(&d)
	}

	var offset float64
	for _, c := range l.Chunks() {
		x := offset + c.Gap
		offset += c.Gap + c.Width
		if c.Width == 0 {
			continue
		}
		d.Shapes = append(d.Shapes, Shape{X: x, Width: c.Width, Center: x + c.Width/2})
	}
	return d
}
