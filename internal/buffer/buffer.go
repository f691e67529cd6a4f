package buffer

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrOutOfBounds reports a cursor addressing a line or column that does not
// exist. MoveTo is the only cursor mutator, so hitting this is a programming
// defect, not a user condition.
var ErrOutOfBounds = errors.New("cursor out of bounds")

// DefaultTerminator is appended to every line on save, including the last.
const DefaultTerminator = "\n"

// Row is one visible line of a buffer, placed at an absolute screen cell.
type Row struct {
	Screen Pos
	Text   string
}

// Buffer holds an ordered sequence of lines plus a cursor, a scroll offset,
// a viewport size and a screen placement. All mutation goes through its
// methods; the cursor is only ever moved by MoveTo.
type Buffer struct {
	lines      [][]rune
	cursor     Pos
	scroll     Pos
	viewSize   Pos
	origin     Pos
	terminator string
}

func New() *Buffer {
	return &Buffer{terminator: DefaultTerminator}
}

// Load builds a buffer from text, one entry per input line with the
// terminator stripped. A trailing terminator does not produce an empty
// final line.
func Load(text string) *Buffer {
	b := New()
	if text == "" {
		return b
	}
	text = strings.TrimSuffix(text, b.terminator)
	for _, line := range strings.Split(text, b.terminator) {
		b.lines = append(b.lines, []rune(line))
	}
	return b
}

func LoadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return Load(string(data)), nil
}

// Save writes every line followed by the terminator. Buffer state is not
// touched; deciding what the current document path is belongs to the caller.
func (b *Buffer) Save(path string) error {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(string(line))
		sb.WriteString(b.terminator)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (b *Buffer) SetViewportSize(size Pos) { b.viewSize = size }
func (b *Buffer) SetOrigin(pos Pos)        { b.origin = pos }

func (b *Buffer) Cursor() Pos       { return b.cursor }
func (b *Buffer) Scroll() Pos       { return b.scroll }
func (b *Buffer) ViewportSize() Pos { return b.viewSize }
func (b *Buffer) Origin() Pos       { return b.origin }

// Len is the number of content lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Line returns the text of line y, or "" when no such line exists.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= len(b.lines) {
		return ""
	}
	return string(b.lines[y])
}

// Contents joins all lines with the terminator, without a trailing one.
func (b *Buffer) Contents() string {
	parts := make([]string, len(b.lines))
	for i, line := range b.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, b.terminator)
}

// lineLen is the length of line y, treating a missing line as empty.
func (b *Buffer) lineLen(y int) int {
	if y < 0 || y >= len(b.lines) {
		return 0
	}
	return len(b.lines[y])
}

// MoveTo clamps target to the document and sets the cursor, then re-caps the
// scroll offset so the cursor stays visible. Every cursor change in the
// buffer funnels through here.
func (b *Buffer) MoveTo(target Pos) Pos {
	y := target.Y
	if maxY := len(b.lines) - 1; y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	x := target.X
	if maxX := b.lineLen(y); x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	b.cursor = Pos{X: x, Y: y}
	b.capScroll()
	return b.cursor
}

// capScroll adjusts each scroll axis independently so the cursor lands
// inside the viewport. An axis with a zero viewport size is left alone.
func (b *Buffer) capScroll() {
	if b.viewSize.X > 0 {
		if b.cursor.X < b.scroll.X {
			b.scroll.X = b.cursor.X
		} else if b.cursor.X > b.scroll.X+b.viewSize.X-1 {
			b.scroll.X = b.cursor.X - b.viewSize.X + 1
		}
	}
	if b.viewSize.Y > 0 {
		if b.cursor.Y < b.scroll.Y {
			b.scroll.Y = b.cursor.Y
		} else if b.cursor.Y > b.scroll.Y+b.viewSize.Y-1 {
			b.scroll.Y = b.cursor.Y - b.viewSize.Y + 1
		}
	}
}

// MoveRelative targets the cell delta away from the scroll origin, clamping
// instead of rejecting. Mouse clicks land here: an out-of-range cell is
// expected and simply snaps to the nearest valid position.
func (b *Buffer) MoveRelative(delta Pos) Pos {
	return b.MoveTo(b.scroll.Add(delta))
}

func (b *Buffer) MoveUp() Pos {
	return b.MoveTo(b.cursor.Sub(Pos{Y: 1}))
}

func (b *Buffer) MoveDown() Pos {
	return b.MoveTo(b.cursor.Add(Pos{Y: 1}))
}

func (b *Buffer) MoveUpN(n int) Pos {
	return b.MoveTo(b.cursor.Sub(Pos{Y: n}))
}

func (b *Buffer) MoveDownN(n int) Pos {
	return b.MoveTo(b.cursor.Add(Pos{Y: n}))
}

// MoveLineEnd places the cursor just past the last rune of the current line.
func (b *Buffer) MoveLineEnd() Pos {
	return b.MoveTo(Pos{X: b.lineLen(b.cursor.Y), Y: b.cursor.Y})
}

// MoveLeftBy traverses up to n runes leftward, jumping to the end of the
// previous line when crossing column 0; the line break itself costs one unit.
// Movement stops at (0,0). Returns the units actually moved.
func (b *Buffer) MoveLeftBy(n int) int {
	x, y := b.cursor.X, b.cursor.Y
	moved := 0
	for moved < n {
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = b.lineLen(y)
		} else {
			break
		}
		moved++
	}
	b.MoveTo(Pos{X: x, Y: y})
	return moved
}

// MoveRightBy is the rightward counterpart of MoveLeftBy, stopping at the
// end of the last line.
func (b *Buffer) MoveRightBy(n int) int {
	x, y := b.cursor.X, b.cursor.Y
	moved := 0
	for moved < n {
		if x < b.lineLen(y) {
			x++
		} else if y+1 < len(b.lines) {
			y++
			x = 0
		} else {
			break
		}
		moved++
	}
	b.MoveTo(Pos{X: x, Y: y})
	return moved
}

// InsertText inserts text into the cursor's line at the cursor's column and
// moves the cursor past it. On an empty buffer the implicit empty line is
// materialized first. The text must not contain the line terminator.
func (b *Buffer) InsertText(text string) error {
	if b.cursor.Y == len(b.lines) && b.cursor.X == 0 {
		b.lines = append(b.lines, []rune{})
	}
	if b.cursor.Y >= len(b.lines) {
		return fmt.Errorf("insert at %s: %w", b.cursor, ErrOutOfBounds)
	}
	line := b.lines[b.cursor.Y]
	if b.cursor.X > len(line) {
		return fmt.Errorf("insert at %s: %w", b.cursor, ErrOutOfBounds)
	}
	runes := []rune(text)
	next := make([]rune, 0, len(line)+len(runes))
	next = append(next, line[:b.cursor.X]...)
	next = append(next, runes...)
	next = append(next, line[b.cursor.X:]...)
	b.lines[b.cursor.Y] = next
	b.MoveTo(Pos{X: b.cursor.X + len(runes), Y: b.cursor.Y})
	return nil
}

// SplitLine cuts the current line at the cursor: the head replaces the
// current line, the tail becomes a new line right after it, and the cursor
// moves to column 0 of that new line. On an empty buffer the implicit empty
// line is split, leaving two empty lines.
func (b *Buffer) SplitLine() {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, []rune{})
	}
	y := b.cursor.Y
	line := b.lines[y]
	x := min(b.cursor.X, len(line))
	head := append([]rune{}, line[:x]...)
	tail := append([]rune{}, line[x:]...)
	b.lines[y] = head
	b.lines = append(b.lines[:y+1], append([][]rune{tail}, b.lines[y+1:]...)...)
	b.MoveTo(Pos{X: 0, Y: y + 1})
}

// DeleteBack removes up to n runes immediately before the cursor. Crossing a
// line start joins the current line onto the previous one, relocating the
// cursor to the join point; the line break counts as one deleted unit.
// Stops early at the document start.
func (b *Buffer) DeleteBack(n int) {
	x, y := b.cursor.X, b.cursor.Y
	for i := 0; i < n; i++ {
		if x > 0 {
			line := b.lines[y]
			b.lines[y] = append(line[:x-1], line[x:]...)
			x--
		} else if y > 0 {
			join := len(b.lines[y-1])
			b.lines[y-1] = append(b.lines[y-1], b.lines[y]...)
			b.lines = append(b.lines[:y], b.lines[y+1:]...)
			y--
			x = join
		} else {
			break
		}
	}
	b.MoveTo(Pos{X: x, Y: y})
}

// DeleteFront deletes up to n runes after the cursor by walking right and
// deleting backward by the distance covered, so the cursor ends up where it
// started.
func (b *Buffer) DeleteFront(n int) {
	moved := b.MoveRightBy(n)
	b.DeleteBack(moved)
}

// Clear drops all content and homes the cursor.
func (b *Buffer) Clear() {
	b.lines = nil
	b.MoveTo(Pos{})
}

// ViewportRows projects the visible slice of the buffer onto absolute screen
// cells. The result is recomputed on every call.
func (b *Buffer) ViewportRows() []Row {
	var rows []Row
	for y := b.scroll.Y; y < b.scroll.Y+b.viewSize.Y; y++ {
		if y >= len(b.lines) {
			break
		}
		rows = append(rows, Row{
			Screen: b.origin.Add(Pos{Y: y - b.scroll.Y}),
			Text:   string(b.lines[y]),
		})
	}
	return rows
}

// CursorScreenPos maps the cursor into absolute screen coordinates.
func (b *Buffer) CursorScreenPos() Pos {
	return b.cursor.Sub(b.scroll).Add(b.origin)
}
