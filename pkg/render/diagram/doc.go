// Package diagram draws a string spacing layout to scale.
//
// A [Diagram] is a frame as wide as the nut or saddle with one translucent
// rectangle per string and a hairline through its center. All coordinates
// are in inches; [RenderSVG] sizes the document in physical units so that a
// print at 100% can be laid directly on the instrument to mark slots.
//
//	l := spacing.Calculate(params, config)
//	d := diagram.Build(l)
//	svg, err := diagram.RenderSVG(d)
//
// Other outputs:
//
//   - [RenderPNG]: raster image at a chosen DPI (default 300)
//   - [RenderPDF]: vector PDF via rsvg-convert
//   - [RenderJSON]: shape geometry for other tools, read back with [ReadJSON]
//
// Every renderer returns [ErrEmpty] for a diagram with no strings.
package diagram
