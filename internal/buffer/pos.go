package buffer

import "fmt"

// Pos is a non-negative document coordinate: X is a column (rune index
// within a line), Y is a line number. (0,0) is the top-left. The same type
// doubles as a size and a screen placement.
type Pos struct {
	X int
	Y int
}

func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub subtracts componentwise, clamping each axis at 0. Positions never go
// negative; callers rely on that instead of signed arithmetic.
func (p Pos) Sub(q Pos) Pos {
	return Pos{X: max(0, p.X-q.X), Y: max(0, p.Y-q.Y)}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell returns the position as a terminal (column, row) pair.
func (p Pos) Cell() (int, int) {
	return p.X, p.Y
}

// FromCell converts a terminal (column, row) pair into a Pos, flooring
// negative device coordinates at 0.
func FromCell(x, y int) Pos {
	return Pos{X: max(0, x), Y: max(0, y)}
}
