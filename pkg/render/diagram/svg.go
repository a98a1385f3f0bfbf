package diagram

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// RenderSVG draws d as an SVG document sized in inches.
func RenderSVG(d Diagram) ([]byte, error) {
	if d.Empty() {
		return nil, ErrEmpty
	}

	h := d.Hairline
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%sin" height="%sin">`+"\n",
		num(-h/2), num(-h/2), num(d.Width+h), num(d.Height+h), num(d.Width+h), num(d.Height+h))

	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="none" stroke="black" stroke-width="%s"/>`+"\n",
		num(d.Width), num(d.Height), num(h))

	for _, s := range d.Shapes {
		fmt.Fprintf(&buf, `  <rect x="%s" y="0" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			num(s.X), num(s.Width), num(d.Height), d.Fill, num(d.FillOpacity))
		fmt.Fprintf(&buf, `  <line x1="%s" y1="0" x2="%s" y2="%s" stroke="black" stroke-width="%s"/>`+"\n",
			num(s.Center), num(s.Center), num(d.Height), num(h))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// num formats a coordinate with enough precision for thousandths of an inch
// and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
