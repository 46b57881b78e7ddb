package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board is the playfield: a fixed-size grid of locked cell colors.
// ColorNone marks an empty cell. The board never references the
// falling piece; the two are combined transiently for rendering and
// at lock time.
type Board struct {
	w, h  int
	cells []core.Color
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(w, h int) *Board {
	return &Board{
		w:     w,
		h:     h,
		cells: make([]core.Color, w*h),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.w
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.h
}

// At returns the color of the cell at (x, y).
// Out-of-range coordinates read as empty.
func (b *Board) At(x, y int) core.Color {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return core.ColorNone
	}
	return b.cells[y*b.w+x]
}

// set writes a cell without bounds checking; callers clip first.
func (b *Board) set(x, y int, c core.Color) {
	b.cells[y*b.w+x] = c
}

// CanPlace reports whether the piece fits at its current position:
// every occupied cell must be inside the field and empty. Cells above
// row 0 are exempt, so a fresh piece may spawn partially off-screen.
// This is the sole collision predicate, used for gravity descent,
// horizontal moves, rotation and spawn checks alike; there are no
// wall kicks, a rotation that does not fit is simply rejected.
func (b *Board) CanPlace(p Piece) bool {
	r := p.Bounds()
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !p.Occupies(x, y) {
				continue
			}
			if y < 0 {
				continue
			}
			if x < 0 || x >= b.w || y >= b.h || b.At(x, y) != core.ColorNone {
				return false
			}
		}
	}
	return true
}

// Put writes the piece's color into every cell it occupies, clipped to
// the field; cells above row 0 are dropped. Callers must have already
// confirmed CanPlace.
func (b *Board) Put(p Piece) {
	col := p.Color()
	r := p.Bounds()
	for y := core.Max(0, r.Y); y < core.Min(b.h, r.Bottom()); y++ {
		for x := core.Max(0, r.X); x < core.Min(b.w, r.Right()); x++ {
			if p.Occupies(x, y) {
				b.set(x, y, col)
			}
		}
	}
}

// ClearFilled removes every fully occupied row, shifting the rows
// above it down by one and emptying row 0. After a clear the same row
// index is examined again, since the row shifted into it may itself be
// filled. Returns the number of rows cleared.
func (b *Board) ClearFilled() int {
	cleared := 0
	for y := b.h - 1; y >= 0; y-- {
		filled := true
		for x := 0; x < b.w; x++ {
			if b.At(x, y) == core.ColorNone {
				filled = false
				break
			}
		}
		if !filled {
			continue
		}

		cleared++
		for yy := y; yy >= 1; yy-- {
			copy(b.cells[yy*b.w:(yy+1)*b.w], b.cells[(yy-1)*b.w:yy*b.w])
		}
		for x := 0; x < b.w; x++ {
			b.set(x, 0, core.ColorNone)
		}
		y++ // re-examine this row: a new one just shifted into it
	}
	return cleared
}

// Clone returns a deep copy of the board. The game loop renders a
// clone with the falling piece written in, leaving the live board
// untouched until the piece locks.
func (b *Board) Clone() *Board {
	c := &Board{
		w:     b.w,
		h:     b.h,
		cells: make([]core.Color, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}
