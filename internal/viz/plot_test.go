package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/phugoid/internal/flight"
)

func tracePath(t *testing.T, p flight.Params) *flight.Path {
	t.Helper()
	path, err := flight.Trace(p)
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	return path
}

func TestTitleAndLegend(t *testing.T) {
	path := tracePath(t, flight.Params{Zt: 1.0, Z0: 1.3, Steps: 10})

	title := Title(path)
	if !strings.HasPrefix(title, "Flight path for C = ") {
		t.Errorf("unexpected title: %q", title)
	}
	if !strings.Contains(title, "0.646") {
		t.Errorf("expected C ~ 0.646 in title, got %q", title)
	}

	legend := Legend(path)
	if legend != "z_t=1.0, z_0=1.3, theta_0=0.00" {
		t.Errorf("unexpected legend: %q", legend)
	}
}

func TestPlotPath(t *testing.T) {
	path := tracePath(t, flight.Params{Zt: 64, Z0: 16, Steps: 200})

	out := PlotPath(path, 40, 12)
	if !strings.Contains(out, "Flight path for C") {
		t.Error("plot missing title")
	}
	if !strings.Contains(out, "z_t=64.0") {
		t.Error("plot missing legend")
	}

	marked := 0
	for _, r := range out {
		if r > 0x2800 && r <= 0x28FF {
			marked++
		}
	}
	if marked == 0 {
		t.Error("expected at least one marked braille cell")
	}
}

func TestPlotPathDegenerate(t *testing.T) {
	// zero trim depth: only the anchor point is finite
	path := tracePath(t, flight.Params{Zt: 0, Z0: 1, Steps: 10})

	out := PlotPath(path, 40, 12)
	if out == "" {
		t.Error("expected non-empty output for degenerate path")
	}
}

func TestDepthGraph(t *testing.T) {
	path := tracePath(t, flight.Params{Zt: 64, Z0: 16, Steps: 100})

	out := DepthGraph(path, 60, 8)
	if !strings.Contains(out, "depth z per step") {
		t.Errorf("depth graph missing caption: %q", out)
	}
}

func TestDepthGraphDegenerate(t *testing.T) {
	path := tracePath(t, flight.Params{Zt: 0, Z0: 1, Steps: 10})

	// one finite sample only; must degrade, not panic
	out := DepthGraph(path, 60, 8)
	if out == "" {
		t.Error("expected a notice for a degenerate depth series")
	}
}
