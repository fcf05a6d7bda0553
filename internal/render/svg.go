package render

import (
	"fmt"
	"strings"
)

// document accumulates SVG element markup in draw order: polylines first,
// then route labels, then stop circles, then stop labels. Later elements
// paint over earlier ones: routes lie beneath everything, stop circles
// cover routes and route labels, and stop labels are on top.
type document struct {
	elements []string
}

func (d *document) polyline(pts []point, stroke Color, width float64) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	d.elements = append(d.elements, fmt.Sprintf(
		`<polyline points="%s" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"/>`,
		strings.Join(coords, " "), stroke, width))
}

func (d *document) circle(center point, radius float64, fill Color) {
	d.elements = append(d.elements, fmt.Sprintf(
		`<circle cx="%g" cy="%g" r="%g" fill="%s"/>`,
		center.X, center.Y, radius, fill))
}

// text emits an underlayer copy of the label (stroked in the underlayer
// color, for legibility against the map) followed by the fill copy, the
// two-pass idiom the original renderer this package supplements uses.
func (d *document) text(pos point, offset Offset, fontSize int, bold bool, label string, fill, underlayer Color, underlayerWidth float64) {
	weight := ""
	if bold {
		weight = ` font-weight="bold"`
	}
	escaped := escapeText(label)

	d.elements = append(d.elements, fmt.Sprintf(
		`<text x="%g" y="%g" dx="%g" dy="%g" font-size="%d" font-family="Verdana"%s fill="%s" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round">%s</text>`,
		pos.X, pos.Y, offset.X, offset.Y, fontSize, weight, underlayer, underlayer, underlayerWidth, escaped))

	d.elements = append(d.elements, fmt.Sprintf(
		`<text x="%g" y="%g" dx="%g" dy="%g" font-size="%d" font-family="Verdana"%s fill="%s">%s</text>`,
		pos.X, pos.Y, offset.X, offset.Y, fontSize, weight, fill, escaped))
}

func (d *document) render(width, height float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8" ?>`)
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" version="1.1">`, width, height)
	for _, e := range d.elements {
		b.WriteString(e)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func escapeText(s string) string {
	r := strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
