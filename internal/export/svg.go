// Package export renders traced flight paths as SVG figures.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/phugoid/internal/flight"
)

const (
	marginTop    = 48.0 // leaves room for the title
	marginBottom = 40.0 // leaves room for the legend and x label
	marginSide   = 48.0
)

// PathToSVG renders the flight path as an equal-aspect SVG polyline
// with the figure title, the initial-condition legend, and x/z axis
// labels. The vertical axis is -z so greater altitude is up.
//
// Non-finite points split the polyline; a fully degenerate path still
// produces a valid figure with no trace.
func PathToSVG(path *flight.Path, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	title := fmt.Sprintf("Flight path for C = %.3f", path.C)
	legend := fmt.Sprintf("z_t=%.1f, z_0=%.1f, theta_0=%.2f", path.Zt, path.Z0, path.Theta0)

	sb.WriteString(fmt.Sprintf("<text x=\"%.0f\" y=\"28\" fill=\"#eeeeee\" font-family=\"monospace\" font-size=\"18\" text-anchor=\"middle\">%s</text>\n",
		float64(width)/2, title))

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := range path.X {
		x, y := path.X[i], -path.Z[i]
		if !finite(x) || !finite(y) {
			continue
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	if minX <= maxX {
		plotW := float64(width) - 2*marginSide
		plotH := float64(height) - marginTop - marginBottom

		rangeX := maxX - minX
		rangeY := maxY - minY
		// shared scale on both axes: equal aspect
		scale := math.Max(rangeX/plotW, rangeY/plotH)
		if scale == 0 {
			scale = 1
		}
		// center the trace inside the plot area
		bandLeft := marginSide + (plotW-rangeX/scale)/2
		bandTop := marginTop + (plotH-rangeY/scale)/2

		sb.WriteString(`<path fill="none" stroke="#00ff88" stroke-width="1.5" d="`)
		pen := false
		for i := range path.X {
			x, y := path.X[i], -path.Z[i]
			if !finite(x) || !finite(y) {
				pen = false
				continue
			}
			sx := bandLeft + (x-minX)/scale
			sy := bandTop + (maxY-y)/scale
			if pen {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", sx, sy))
			} else {
				sb.WriteString(fmt.Sprintf(" M%.1f,%.1f", sx, sy))
				pen = true
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString(fmt.Sprintf("<text x=\"%.0f\" y=\"%.0f\" fill=\"#888899\" font-family=\"monospace\" font-size=\"13\" text-anchor=\"middle\">%s</text>\n",
		float64(width)/2, float64(height)-12, legend))
	sb.WriteString(fmt.Sprintf("<text x=\"%.0f\" y=\"%.0f\" fill=\"#666688\" font-family=\"monospace\" font-size=\"13\" text-anchor=\"middle\">x</text>\n",
		float64(width)/2, float64(height)-28))
	sb.WriteString(fmt.Sprintf("<text x=\"16\" y=\"%.0f\" fill=\"#666688\" font-family=\"monospace\" font-size=\"13\">z</text>\n",
		float64(height)/2))

	sb.WriteString("</svg>")
	return sb.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
