// Package render converts string spacing diagrams to printable formats.
//
// # Overview
//
// Drawing happens in the [diagram] subpackage, which emits SVG sized in
// physical inches so that a print at 100% scale lines up with a real nut or
// bridge. This package holds the format conversion that sits behind it:
//
//	svg, err := diagram.RenderSVG(d)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [ToPDF] shells out to rsvg-convert (from librsvg). PNG output does not need
// it; [diagram.RenderPNG] rasterizes directly.
//
// [diagram]: github.com/brian-c/string-spacing-calculator/pkg/render/diagram
// [diagram.RenderPNG]: github.com/brian-c/string-spacing-calculator/pkg/render/diagram#RenderPNG
package render
