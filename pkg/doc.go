// Package pkg provides the libraries behind the stringspacing calculator.
//
// # Overview
//
// Given the width of a nut or saddle, the clearance at each edge and the
// gauges of the strings, stringspacing places the strings so that the gaps
// between courses are equal. The pkg directory is organized into:
//
//  1. [spacing] - The calculator: parsing gauges and computing the layout
//  2. [preset] - Built-in and user string set presets
//  3. [settings] - Persisted inputs with per-key defaults
//  4. [render] - To-scale diagrams and format conversion
//  5. [cache] - Rendered artifact cache
//  6. [errors] - Structured error codes
//
// # Architecture
//
//	configuration text + widths
//	         ↓
//	    [spacing] package (courses → layout)
//	         ↓
//	    [render/diagram] package (layout → shapes)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	p := spacing.Params{Width: 1.625, StartGap: 0.15, EndGap: 0.15, InCourseGap: 0.07}
//	l := spacing.Calculate(p, "49\n62\n84\n108")
//	svg, err := diagram.RenderSVG(diagram.Build(l))
//
// [spacing]: github.com/brian-c/string-spacing-calculator/pkg/spacing
// [preset]: github.com/brian-c/string-spacing-calculator/pkg/preset
// [settings]: github.com/brian-c/string-spacing-calculator/pkg/settings
// [render]: github.com/brian-c/string-spacing-calculator/pkg/render
// [render/diagram]: github.com/brian-c/string-spacing-calculator/pkg/render/diagram
// [cache]: github.com/brian-c/string-spacing-calculator/pkg/cache
// [errors]: github.com/brian-c/string-spacing-calculator/pkg/errors
package pkg
