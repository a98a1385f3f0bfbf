package diagram

import (
	"context"

	"github.com/brian-c/string-spacing-calculator/pkg/render"
)

// RenderPDF draws d as SVG and converts it with rsvg-convert.
func RenderPDF(ctx context.Context, d Diagram) ([]byte, error) {
	svg, err := RenderSVG(d)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
