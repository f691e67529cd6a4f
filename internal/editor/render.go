package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/zafkar/rudit/internal/buffer"
)

// Render paints both buffers' viewport projections, the status line, and
// the hardware cursor of the active buffer. All geometry comes from the
// buffers themselves; this file only draws.
func (e *Editor) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	if e.needFullClear {
		s.SetStyle(e.styleEdit)
		s.Clear()
		e.needFullClear = false
	}

	e.renderZone(s, w, e.editBuf, e.styleEdit)
	e.renderZone(s, w, e.cmdBuf, e.styleCommand)
	e.renderStatusLine(s, w, h-1)

	switch e.mode {
	case ModeEdit, ModeCommand:
		cur := e.activeBuffer().CursorScreenPos()
		s.ShowCursor(cur.Cell())
	default:
		s.HideCursor()
	}
	s.Show()
}

// renderZone draws every viewport row of a buffer, padding to the viewport
// width so shortened lines leave no stale glyphs. Rows past the content are
// blanked in the zone's style.
func (e *Editor) renderZone(s tcell.Screen, w int, buf *buffer.Buffer, style tcell.Style) {
	size := buf.ViewportSize()
	origin := buf.Origin()
	drawn := make(map[int]bool, size.Y)
	for _, row := range buf.ViewportRows() {
		drawText(s, row.Screen.X, row.Screen.Y, w, row.Text, style)
		drawn[row.Screen.Y] = true
	}
	for y := origin.Y; y < origin.Y+size.Y; y++ {
		if !drawn[y] {
			drawText(s, origin.X, y, w, "", style)
		}
	}
}

func (e *Editor) renderStatusLine(s tcell.Screen, w, y int) {
	if y < 0 {
		return
	}
	var status string
	if e.statusMessage != "" {
		status = e.statusMessage
	} else {
		name := e.filename
		if name == "" {
			name = "[no name]"
		}
		status = fmt.Sprintf("%s  %d lines  cursor %s  key %s",
			name, e.editBuf.Len(), e.editBuf.Cursor(), e.lastKeyCombo)
	}
	drawText(s, 0, y, w, status, e.styleStatus)
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// drawText writes text at (x,y), clipping at width w and padding the rest
// of the row with spaces in the same style.
func drawText(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	col := x
	for _, r := range strings.ReplaceAll(text, "\t", "    ") {
		if col >= w {
			break
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}
