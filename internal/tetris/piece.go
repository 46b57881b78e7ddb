package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Rotation is a clockwise quarter-turn rotation state.
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Point is a cell coordinate on the playfield.
type Point struct {
	X, Y int
}

// Piece is a shape instance with a position and rotation. It is a
// plain value: Moved and Rotated return new pieces and perform no
// validation, so callers can test a transform against the board and
// adopt it only when it fits. A rejected transform leaves the original
// untouched.
//
// (X, Y) is the playfield location of the shape grid's logical center;
// the grid extends WL=W/2 cells left of it and HL=H/2 cells above it.
type Piece struct {
	Shape *ShapeDefinition
	X, Y  int
	Rot   Rotation
}

// NewPiece creates a piece at the given position with no rotation.
func NewPiece(shape *ShapeDefinition, x, y int) Piece {
	return Piece{Shape: shape, X: x, Y: y}
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy advanced one quarter-turn clockwise.
func (p Piece) Rotated() Piece {
	p.Rot = (p.Rot + 1) % 4
	return p
}

// Color returns the piece's color, fixed by its shape.
func (p Piece) Color() core.Color {
	return p.Shape.Color
}

// Bounds returns the full extent the shape grid covers at the current
// rotation, as a rectangle in playfield coordinates. Cells inside the
// bounds may still be unoccupied; Occupies is the authority.
func (p Piece) Bounds() core.Rect {
	wl, wr := p.Shape.W/2, p.Shape.W-p.Shape.W/2
	hl, hr := p.Shape.H/2, p.Shape.H-p.Shape.H/2
	if p.Rot == Rot90 || p.Rot == Rot270 {
		// Rotation maps the grid's row axis onto the field's column axis.
		wl, wr, hl, hr = hl, hr, wl, wr
	}
	return core.NewRect(p.X-wl, p.Y-hl, wl+wr, hl+hr)
}

// Occupies reports whether the piece covers the absolute playfield
// cell (x, y). The four per-rotation transforms compose so that four
// successive rotations reproduce the original occupancy exactly.
func (p Piece) Occupies(x, y int) bool {
	col := x - (p.X - p.Shape.W/2)
	row := y - (p.Y - p.Shape.H/2)
	switch p.Rot {
	case Rot0:
		return p.Shape.Occupied(row, col)
	case Rot90:
		return p.Shape.Occupied(col, p.Shape.H-1-row)
	case Rot180:
		return p.Shape.Occupied(p.Shape.H-1-row, p.Shape.W-1-col)
	case Rot270:
		return p.Shape.Occupied(p.Shape.W-1-col, row)
	}
	return false
}

// Cells returns the absolute coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	r := p.Bounds()
	cells := make([]Point, 0, 4)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if p.Occupies(x, y) {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}
