package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %#x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x2880 {
		t.Errorf("expected dot 8 set too, got %#x", c.Grid[0][0])
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	// must not panic or mark anything
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("expected empty canvas, found %#x", r)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not set")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("line end not set")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 cells per row, got %d", len([]rune(line)))
		}
	}
}
