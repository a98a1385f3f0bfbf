package diagram

import (
	"bytes"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// DefaultDPI is the raster resolution used by [RenderPNG].
const DefaultDPI = 300

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi float64
}

// WithDPI sets the raster resolution. Non-positive values keep the default.
func WithDPI(dpi float64) PNGOption {
	return func(r *pngRenderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// namedColors maps the SVG color keywords a fill is likely to use.
var namedColors = map[string]string{
	"lime":    "#00ff00",
	"green":   "#008000",
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"gray":    "#808080",
	"grey":    "#808080",
}

// fillColor resolves an SVG color keyword or hex string.
func fillColor(name string, opacity float64) gg.RGBA {
	hex := strings.ToLower(strings.TrimSpace(name))
	if v, ok := namedColors[hex]; ok {
		hex = v
	}
	c := gg.Hex(hex)
	c.A *= opacity
	return c
}

// RenderPNG rasterizes d on a white background. The image covers the same
// area as the SVG viewBox, so a print at the chosen DPI is to scale.
func RenderPNG(d Diagram, opts ...PNGOption) ([]byte, error) {
	if d.Empty() {
		return nil, ErrEmpty
	}
	r := pngRenderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}

	h := d.Hairline
	px := func(in float64) float64 { return in * r.dpi }
	// origin shifts inches into pixel space, matching the viewBox offset.
	x := func(in float64) float64 { return px(in + h/2) }

	w := int(math.Ceil(px(d.Width + h)))
	ht := int(math.Ceil(px(d.Height + h)))
	dc := gg.NewContext(w, ht)
	defer dc.Close()

	dc.ClearWithColor(gg.White)

	fill := fillColor(d.Fill, d.FillOpacity)
	for _, s := range d.Shapes {
		dc.SetRGBA(fill.R, fill.G, fill.B, fill.A)
		dc.DrawRectangle(x(s.X), x(0), px(s.Width), px(d.Height))
		if err := dc.Fill(); err != nil {
			return nil, err
		}
	}

	line := math.Max(px(h), 1)
	dc.SetRGBA(0, 0, 0, 1)
	dc.SetLineWidth(line)
	for _, s := range d.Shapes {
		dc.DrawLine(x(s.Center), x(0), x(s.Center), x(d.Height))
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
	}
	dc.DrawRectangle(x(0), x(0), px(d.Width), px(d.Height))
	if err := dc.Stroke(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
