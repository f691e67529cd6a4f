package editor

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/zafkar/rudit/internal/buffer"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func screenRow(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) > 0 {
			sb.WriteRune(cell.Runes[0])
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestRenderEditZone(t *testing.T) {
	e := newTestEditor("alpha", "beta")
	e.SetSize(20, 5)
	s := newSimScreen(t, 20, 5)

	e.Render(s)

	if got := screenRow(s, 0); got != "alpha" {
		t.Fatalf("row 0 = %q, want alpha", got)
	}
	if got := screenRow(s, 1); got != "beta" {
		t.Fatalf("row 1 = %q, want beta", got)
	}
	if got := screenRow(s, 4); got == "" {
		t.Fatalf("status line empty")
	}
	x, y, visible := s.GetCursor()
	if !visible || x != 0 || y != 0 {
		t.Fatalf("cursor = (%d,%d) visible=%v, want (0,0) shown", x, y, visible)
	}
}

func TestRenderCommandZoneAboveStatus(t *testing.T) {
	e := newTestEditor("alpha")
	e.SetSize(20, 5)
	pressKey(e, tcell.KeyEscape, 0)
	typeString(e, "save_as x")
	s := newSimScreen(t, 20, 5)

	e.Render(s)

	if got := screenRow(s, 3); got != "save_as x" {
		t.Fatalf("command row = %q, want save_as x", got)
	}
	x, y, visible := s.GetCursor()
	if !visible || x != 9 || y != 3 {
		t.Fatalf("cursor = (%d,%d) visible=%v, want (9,3) shown", x, y, visible)
	}
}

func TestRenderStatusShowsMessage(t *testing.T) {
	e := newTestEditor("alpha")
	e.SetSize(20, 5)
	e.setStatus("boom")
	s := newSimScreen(t, 20, 5)

	e.Render(s)

	if got := screenRow(s, 4); got != "boom" {
		t.Fatalf("status = %q, want boom", got)
	}
}

func TestRenderScrolledViewport(t *testing.T) {
	e := newTestEditor("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	e.SetSize(20, 4) // 3 content rows + status
	e.editBuf.MoveTo(buffer.Pos{Y: 7})
	s := newSimScreen(t, 20, 4)

	e.Render(s)

	if got := screenRow(s, 0); got != "5" {
		t.Fatalf("top row = %q, want 5", got)
	}
	if got := screenRow(s, 2); got != "7" {
		t.Fatalf("bottom content row = %q, want 7", got)
	}
}

func TestParseColor(t *testing.T) {
	if got := parseColor("#102030", tcell.ColorWhite); got != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Fatalf("hex parse = %v", got)
	}
	if got := parseColor("red", tcell.ColorWhite); got == tcell.ColorWhite {
		t.Fatalf("named color fell back")
	}
	if got := parseColor("", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Fatalf("empty did not fall back")
	}
	if got := parseColor("no-such-color", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Fatalf("unknown did not fall back")
	}
}
