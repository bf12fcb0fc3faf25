package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/phugoid/internal/flight"
)

// Title formats the figure title for a traced path.
func Title(path *flight.Path) string {
	return fmt.Sprintf("Flight path for C = %.3f", path.C)
}

// Legend formats the initial-condition legend for a traced path.
func Legend(path *flight.Path) string {
	return fmt.Sprintf("z_t=%.1f, z_0=%.1f, theta_0=%.2f", path.Zt, path.Z0, path.Theta0)
}

// PlotPath renders the trajectory as an equal-aspect Braille plot,
// framed by the figure title and the initial-condition legend. The
// vertical axis is -z so that greater altitude is up. Non-finite points
// carry no pixels; the segments around them are dropped.
func PlotPath(path *flight.Path, width, height int) string {
	canvas := NewCanvas(width, height)

	pw := width * 2
	ph := height * 4

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

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(Title(path)))
	sb.WriteByte('\n')

	if minX > maxX {
		sb.WriteString(WarnStyle.Render("no finite points to plot"))
		sb.WriteByte('\n')
		return sb.String()
	}

	// one scale for both axes keeps the aspect ratio equal
	rangeX := maxX - minX
	rangeY := maxY - minY
	scale := math.Max(rangeX/float64(pw-1), rangeY/float64(ph-1))
	if scale == 0 {
		scale = 1
	}

	// center the smaller extent
	offX := (float64(pw-1) - rangeX/scale) / 2
	offY := (float64(ph-1) - rangeY/scale) / 2

	prevOK := false
	var px, py int
	for i := range path.X {
		x, y := path.X[i], -path.Z[i]
		if !finite(x) || !finite(y) {
			prevOK = false
			continue
		}
		cx := int(offX + (x-minX)/scale)
		cy := ph - 1 - int(offY+(y-minY)/scale)
		if prevOK {
			canvas.DrawLine(px, py, cx, cy)
		} else {
			canvas.Set(cx, cy)
		}
		px, py = cx, cy
		prevOK = true
	}

	sb.WriteString(canvas.String())
	sb.WriteString(LegendStyle.Render(Legend(path)))
	sb.WriteByte('\n')
	return sb.String()
}

// DepthGraph plots the depth series over step index. The series is cut
// at the first non-finite sample, which asciigraph cannot place.
func DepthGraph(path *flight.Path, width, height int) string {
	data := make([]float64, 0, len(path.Z))
	for _, z := range path.Z {
		if !finite(z) {
			break
		}
		data = append(data, z)
	}
	if len(data) < 2 {
		return WarnStyle.Render("not enough finite samples for a depth graph")
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("depth z per step (positive down)"),
	)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
