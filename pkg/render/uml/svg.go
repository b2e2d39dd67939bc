package uml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"
)

const (
	arrowLength = 10
	arrowHalf   = 6
	fontSize    = 8
)

const diagramCSS = `
    .class-box { fill: #fffbe6; stroke: #333; stroke-width: 1; }
    .class-name { font-family: monospace; font-size: %dpx; fill: #111; }
    .generalization { fill: none; stroke: #333; stroke-width: 1; }
    .generalization-head { fill: #fff; stroke: #333; stroke-width: 1; }`

// WriteSVG writes d as a standalone SVG document: arrows first, then the
// class boxes with their labels on top.
func WriteSVG(buf *bytes.Buffer, d *Diagram) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		d.Width, d.Height, d.Width, d.Height)
	fmt.Fprintf(buf, "  <style>"+diagramCSS+"\n  </style>\n", fontSize)

	buf.WriteString(`  <g class="arrows">` + "\n")
	for _, a := range d.Arrows {
		writeArrow(buf, a)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="classes">` + "\n")
	for _, b := range d.Boxes {
		fmt.Fprintf(buf, `    <g id="class-%s">`+"\n", escapeXML(b.ID))
		fmt.Fprintf(buf, `      <rect class="class-box" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
			b.X, b.Y, b.W, b.H)
		fmt.Fprintf(buf, `      <text class="class-name" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			b.CenterX(), b.CenterY(), escapeXML(b.Label))
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
}

// writeArrow draws the polyline and the hollow triangle whose tip touches
// the base box.
func writeArrow(buf *bytes.Buffer, a Arrow) {
	if len(a.Points) < 2 {
		return
	}
	tip := a.Points[len(a.Points)-1]
	prev := a.Points[len(a.Points)-2]
	dx, dy := tip.X-prev.X, tip.Y-prev.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy, length = 0, -1, 1
	}
	ux, uy := dx/length, dy/length
	base := Point{X: tip.X - ux*arrowLength, Y: tip.Y - uy*arrowLength}

	line := append(append([]Point(nil), a.Points[:len(a.Points)-1]...), base)
	fmt.Fprintf(buf, `    <polyline class="generalization" data-from="%s" data-to="%s" points="%s"/>`+"\n",
		escapeXML(a.From), escapeXML(a.To), formatPoints(line))

	head := []Point{
		tip,
		{X: base.X - uy*arrowHalf, Y: base.Y + ux*arrowHalf},
		{X: base.X + uy*arrowHalf, Y: base.Y - ux*arrowHalf},
	}
	fmt.Fprintf(buf, `    <polygon class="generalization-head" points="%s"/>`+"\n", formatPoints(head))
}

func formatPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
